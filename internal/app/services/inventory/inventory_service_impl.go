package inventory

import (
	"context"
	"net/url"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/app/services/shared/httpclient"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
	"pharmacy-client/internal/pkg/exceptions"
	"pharmacy-client/internal/pkg/utils"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type inventoryService struct {
	Client      *httpclient.Client
	CurrentUser contracts.CurrentUserProvider
	Log         *zap.Logger
}

func NewInventoryService(client *httpclient.Client, currentUser contracts.CurrentUserProvider, logger *zap.Logger) contracts.InventoryService {
	return &inventoryService{
		Client:      client,
		CurrentUser: currentUser,
		Log:         logger,
	}
}

func (s *inventoryService) GetInventoryList(ctx context.Context) responses.Envelope[[]responses.InventoryItem] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("inventoryService.GetInventoryList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := s.Client.Get(ctx, &httpclient.Request{Path: constvars.EndpointInventoryList})
	if err != nil {
		s.Log.Error("inventoryService.GetInventoryList error fetching inventory",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope([]responses.InventoryItem{}, err, constvars.ErrClientFetchInventoryFailed)
	}

	items, shape, err := utils.DecodeList[responses.InventoryItem](resp.Body, constvars.ResourceInventory)
	if err != nil {
		s.Log.Error("inventoryService.GetInventoryList error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope([]responses.InventoryItem{}, err, constvars.ErrClientFetchInventoryFailed)
	}

	s.Log.Info("inventoryService.GetInventoryList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
		zap.Int(constvars.LoggingCountKey, len(items)),
	)
	return utils.BuildSuccessEnvelope(items, utils.DecodeMessage(resp.Body))
}

func (s *inventoryService) GetInventoryItem(ctx context.Context, inventoryID int) responses.Envelope[*responses.InventoryItem] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("inventoryService.GetInventoryItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInventoryIDKey, inventoryID),
	)

	resp, err := s.Client.Get(ctx, &httpclient.Request{
		Path:  constvars.EndpointInventoryByID,
		Query: url.Values{constvars.QueryParamInventoryID: []string{strconv.Itoa(inventoryID)}},
	})
	if err != nil {
		s.Log.Error("inventoryService.GetInventoryItem error fetching item",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.InventoryItem](nil, err, constvars.ErrClientFetchInventoryFailed)
	}

	item, shape, err := utils.DecodeObject[responses.InventoryItem](resp.Body, constvars.ResourceInventory)
	if err != nil {
		s.Log.Error("inventoryService.GetInventoryItem error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[*responses.InventoryItem](nil, err, constvars.ErrClientFetchInventoryFailed)
	}

	s.Log.Info("inventoryService.GetInventoryItem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInventoryIDKey, item.ID),
	)
	return utils.BuildSuccessEnvelope(item, "")
}

func (s *inventoryService) SaveInventoryItem(ctx context.Context, request *requests.SaveInventoryItem) responses.Envelope[*responses.InventoryItem] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("inventoryService.SaveInventoryItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInventoryIDKey, request.ID),
	)

	if request.UserID == "" {
		if user := s.CurrentUser.CurrentUser(); user != nil {
			request.UserID = user.ID()
		}
	}

	resp, err := s.Client.Post(ctx, &httpclient.Request{
		Path: constvars.EndpointInventorySave,
		Body: request,
	})
	if err != nil {
		s.Log.Error("inventoryService.SaveInventoryItem error saving item",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.InventoryItem](nil, err, constvars.ErrClientSaveInventoryFailed)
	}

	if message, failed := utils.DecodeApplicationFailure(resp.Body); failed {
		s.Log.Error("inventoryService.SaveInventoryItem rejected by backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("message", message),
		)
		return utils.BuildErrorEnvelope[*responses.InventoryItem](nil,
			exceptions.ErrOperationFailed("SaveInventoryItem", utils.FirstNonEmpty(message, constvars.ErrClientSaveInventoryFailed)),
			constvars.ErrClientSaveInventoryFailed)
	}

	saved := savedItemFromRequest(request)
	shape := utils.DetectPayloadShape(resp.Body)
	if shape == utils.PayloadShapeWrapped || (shape == utils.PayloadShapeObject && hasItemFields(resp.Body)) {
		item, _, err := utils.DecodeObject[responses.InventoryItem](resp.Body, constvars.ResourceInventory)
		if err != nil {
			s.Log.Error("inventoryService.SaveInventoryItem error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return utils.BuildErrorEnvelope[*responses.InventoryItem](nil, err, constvars.ErrClientSaveInventoryFailed)
		}
		saved = item
	}

	s.Log.Info("inventoryService.SaveInventoryItem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInventoryIDKey, saved.ID),
	)
	return utils.BuildSuccessEnvelope(saved, utils.FirstNonEmpty(utils.DecodeMessage(resp.Body), constvars.SuccessInventorySaved))
}

func (s *inventoryService) DeleteInventoryItem(ctx context.Context, inventoryID int) responses.Envelope[any] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("inventoryService.DeleteInventoryItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInventoryIDKey, inventoryID),
	)

	user := s.CurrentUser.CurrentUser()
	if user == nil {
		err := exceptions.ErrNotAuthenticated()
		s.Log.Error("inventoryService.DeleteInventoryItem no current user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[any](nil, err, constvars.ErrClientDeleteInventoryFailed)
	}

	resp, err := s.Client.Delete(ctx, &httpclient.Request{
		Path: constvars.EndpointInventoryDelete,
		Query: url.Values{
			constvars.QueryParamUserID:      []string{user.ID()},
			constvars.QueryParamInventoryID: []string{strconv.Itoa(inventoryID)},
		},
	})
	if err != nil {
		s.Log.Error("inventoryService.DeleteInventoryItem error deleting item",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[any](nil, err, constvars.ErrClientDeleteInventoryFailed)
	}

	if message, failed := utils.DecodeApplicationFailure(resp.Body); failed {
		return utils.BuildErrorEnvelope[any](nil,
			exceptions.ErrOperationFailed("DeleteInventoryItem", utils.FirstNonEmpty(message, constvars.ErrClientDeleteInventoryFailed)),
			constvars.ErrClientDeleteInventoryFailed)
	}

	s.Log.Info("inventoryService.DeleteInventoryItem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInventoryIDKey, inventoryID),
	)
	return utils.BuildSuccessEnvelope[any](nil, utils.FirstNonEmpty(utils.DecodeMessage(resp.Body), constvars.SuccessInventoryDeleted))
}

// SearchInventory filters the full list by medicine name, batch number or
// manufacturer, case insensitively. A blank term returns everything.
func (s *inventoryService) SearchInventory(ctx context.Context, term string) responses.Envelope[[]responses.InventoryItem] {
	list := s.GetInventoryList(ctx)
	if !list.Success {
		return list
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}

	matches := []responses.InventoryItem{}
	for _, item := range list.Data {
		if strings.Contains(strings.ToLower(item.MedicineName), term) ||
			strings.Contains(strings.ToLower(item.BatchNumber), term) ||
			strings.Contains(strings.ToLower(item.Manufacturer), term) {
			matches = append(matches, item)
		}
	}
	return utils.BuildSuccessEnvelope(matches, list.Message)
}

func (s *inventoryService) LowStockItems(ctx context.Context, threshold int) responses.Envelope[[]responses.InventoryItem] {
	list := s.GetInventoryList(ctx)
	if !list.Success {
		return list
	}

	lowStock := []responses.InventoryItem{}
	for _, item := range list.Data {
		if item.Quantity <= threshold {
			lowStock = append(lowStock, item)
		}
	}
	return utils.BuildSuccessEnvelope(lowStock, list.Message)
}

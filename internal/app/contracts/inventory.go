package contracts

import (
	"context"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
)

type InventoryService interface {
	GetInventoryList(ctx context.Context) responses.Envelope[[]responses.InventoryItem]
	GetInventoryItem(ctx context.Context, inventoryID int) responses.Envelope[*responses.InventoryItem]
	SaveInventoryItem(ctx context.Context, request *requests.SaveInventoryItem) responses.Envelope[*responses.InventoryItem]
	DeleteInventoryItem(ctx context.Context, inventoryID int) responses.Envelope[any]
	SearchInventory(ctx context.Context, term string) responses.Envelope[[]responses.InventoryItem]
	LowStockItems(ctx context.Context, threshold int) responses.Envelope[[]responses.InventoryItem]
}

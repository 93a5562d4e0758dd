package contracts

import "context"

// PrescriptionArchive keeps a copy of uploaded prescription files and returns
// the stored object name.
type PrescriptionArchive interface {
	Archive(ctx context.Context, patientID, fileName, contentType string, content []byte) (string, error)
}

package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/catalog"
	"library-backend/internal/shared"
)

// ImportRemoteBookPayload - payload cho task import một remote book
type ImportRemoteBookPayload struct {
	GutendexID int `json:"gutendex_id"`
}

// NewImportRemoteBookTask tạo asynq task cho một Gutendex id
func NewImportRemoteBookTask(gutendexID int) (*asynq.Task, error) {
	payload, err := json.Marshal(ImportRemoteBookPayload{GutendexID: gutendexID})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return asynq.NewTask(shared.TypeImportRemoteBook, payload, asynq.MaxRetry(3)), nil
}

// ImportTaskHandler xử lý import tasks trong worker process
type ImportTaskHandler struct {
	importer *catalog.Importer
}

// NewImportTaskHandler - Constructor
func NewImportTaskHandler(importer *catalog.Importer) *ImportTaskHandler {
	return &ImportTaskHandler{importer: importer}
}

// ProcessTask implement asynq.Handler
func (h *ImportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload ImportRemoteBookPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	result := h.importer.ImportByGutendexID(ctx, payload.GutendexID)
	if !result.Ok {
		// Retry - remote catalog có thể chỉ tạm thời unavailable
		return fmt.Errorf("import gutendex book %d: %s", payload.GutendexID, result.Message)
	}

	log.Info().Int("gutendex_id", payload.GutendexID).Str("message", result.Message).
		Msg("[Worker] Import task completed")
	return nil
}

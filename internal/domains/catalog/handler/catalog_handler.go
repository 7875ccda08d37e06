package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/catalog"
	"library-backend/internal/domains/catalog/job"
	"library-backend/internal/shared/response"
)

const maxBulkImportSize = 100

type CatalogHandler struct {
	client      *catalog.Client
	importer    *catalog.Importer
	search      *catalog.SearchService
	enricher    *catalog.Enricher
	asynqClient *asynq.Client
}

// NewCatalogHandler - Constructor. asynqClient có thể nil khi queue
// không được cấu hình - bulk import sẽ trả về 503.
func NewCatalogHandler(
	client *catalog.Client,
	importer *catalog.Importer,
	search *catalog.SearchService,
	enricher *catalog.Enricher,
	asynqClient *asynq.Client,
) *CatalogHandler {
	return &CatalogHandler{
		client:      client,
		importer:    importer,
		search:      search,
		enricher:    enricher,
		asynqClient: asynqClient,
	}
}

// SearchRemote godoc
// GET /api/v1/catalog/search?search=<term>&page=<n>
func (h *CatalogHandler) SearchRemote(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.ErrorResponse(c, http.StatusBadRequest, "Invalid page", "Page must be a positive integer")
			return
		}
		page = parsed
	}

	resp := h.client.Search(c.Request.Context(), c.Query("search"), page)
	response.Success(c, http.StatusOK, "Remote catalog searched successfully", resp)
}

// GetRemoteBook godoc
// GET /api/v1/catalog/books/:id
func (h *CatalogHandler) GetRemoteBook(c *gin.Context) {
	gutendexID, err := strconv.Atoi(c.Param("id"))
	if err != nil || gutendexID < 0 {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid book ID", "Remote book ID must be a non-negative integer")
		return
	}

	gb := h.client.GetByID(c.Request.Context(), gutendexID)
	if gb == nil {
		response.ErrorResponse(c, http.StatusNotFound, "Book not found", "The book was not found in the remote catalog")
		return
	}

	response.Success(c, http.StatusOK, "Remote book retrieved successfully", gb)
}

// ImportByID godoc
// POST /api/v1/catalog/import/:id
func (h *CatalogHandler) ImportByID(c *gin.Context) {
	gutendexID, err := strconv.Atoi(c.Param("id"))
	if err != nil || gutendexID < 0 {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid book ID", "Remote book ID must be a non-negative integer")
		return
	}

	result := h.importer.ImportByGutendexID(c.Request.Context(), gutendexID)
	if !result.Ok {
		response.ErrorResponse(c, http.StatusUnprocessableEntity, "Import failed", result.Message)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}

// ImportRecord godoc
// POST /api/v1/catalog/import - import một record đã fetch sẵn từ remote
func (h *CatalogHandler) ImportRecord(c *gin.Context) {
	var gb catalog.GutendexBook
	if err := c.ShouldBindJSON(&gb); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if gb.Title == "" {
		response.ErrorResponse(c, http.StatusBadRequest, "Validation failed", "title: cannot be blank")
		return
	}

	result := h.importer.ImportBook(c.Request.Context(), &gb)
	if !result.Ok {
		response.ErrorResponse(c, http.StatusUnprocessableEntity, "Import failed", result.Message)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}

// BulkImport godoc
// POST /api/v1/catalog/import/bulk - enqueue import tasks cho worker
func (h *CatalogHandler) BulkImport(c *gin.Context) {
	if h.asynqClient == nil {
		response.ErrorResponse(c, http.StatusServiceUnavailable, "Queue unavailable", "Background import queue is not configured")
		return
	}

	var req struct {
		GutendexIDs []int `json:"gutendex_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if len(req.GutendexIDs) == 0 || len(req.GutendexIDs) > maxBulkImportSize {
		response.ErrorResponse(c, http.StatusBadRequest, "Validation failed",
			"gutendex_ids must contain between 1 and 100 entries")
		return
	}

	enqueued := 0
	for _, id := range req.GutendexIDs {
		task, err := job.NewImportRemoteBookTask(id)
		if err != nil {
			log.Error().Err(err).Int("gutendex_id", id).Msg("[CatalogHandler] Failed to build import task")
			continue
		}
		if _, err := h.asynqClient.EnqueueContext(c.Request.Context(), task); err != nil {
			log.Error().Err(err).Int("gutendex_id", id).Msg("[CatalogHandler] Failed to enqueue import task")
			continue
		}
		enqueued++
	}

	response.Success(c, http.StatusAccepted, "Import tasks enqueued", gin.H{
		"requested": len(req.GutendexIDs),
		"enqueued":  enqueued,
	})
}

// HybridSearch godoc
// GET /api/v1/catalog/hybrid-search?q=<query>
func (h *CatalogHandler) HybridSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.ErrorResponse(c, http.StatusBadRequest, "Missing query", "Query parameter 'q' is required")
		return
	}

	results, err := h.search.SearchHybrid(c.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("[CatalogHandler] Hybrid search failed")
		response.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Hybrid search completed successfully", results)
}

// FullBooks godoc
// GET /api/v1/catalog/full-books - toàn bộ local catalog kèm covers
func (h *CatalogHandler) FullBooks(c *gin.Context) {
	results, err := h.search.ListAllEnriched(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("[CatalogHandler] Full listing failed")
		response.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", results)
}

// CoverByTitle godoc
// GET /api/v1/catalog/cover?title=<title>
func (h *CatalogHandler) CoverByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.ErrorResponse(c, http.StatusBadRequest, "Missing title", "Query parameter 'title' is required")
		return
	}

	enrichment := h.enricher.CoverByTitle(c.Request.Context(), title)
	if enrichment.CoverImageURL == nil {
		response.ErrorResponse(c, http.StatusNotFound, "Cover not found", "No cover was found for this title")
		return
	}

	response.Success(c, http.StatusOK, "Cover retrieved successfully", gin.H{
		"cover_image_url": enrichment.CoverImageURL,
		"download_count":  enrichment.DownloadCount,
	})
}

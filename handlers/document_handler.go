package handlers

import (
	"context"
	"log"
	"net/http"

	"courtdraft-backend/entities"
	"courtdraft-backend/models"
	"courtdraft-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for documents
type DocumentHandler struct {
	documentService *service.DocumentService
	draftService    *service.DraftService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, draftService *service.DraftService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		draftService:    draftService,
	}
}

// CreateDocumentRequest represents the request body for creating a document
type CreateDocumentRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	DocumentType  string `json:"document_type" binding:"required"`
	LegalCategory string `json:"legal_category"`
	State         string `json:"state"`
	County        string `json:"county"`
	CourtName     string `json:"court_name"`
}

// CreateDocument handles POST /api/documents
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_USER_ID",
				"message": "Invalid user_id format",
			},
		})
		return
	}

	serviceReq := service.CreateDocumentRequest{
		UserID:        userID,
		DocumentType:  req.DocumentType,
		LegalCategory: req.LegalCategory,
		State:         req.State,
		County:        req.County,
		CourtName:     req.CourtName,
	}

	result, err := h.documentService.CreateDocument(c.Request.Context(), serviceReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result.Document,
	})
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	result, err := h.documentService.GetDocument(c.Request.Context(), service.GetDocumentRequest{ID: id})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Document,
	})
}

// UpdateDocumentRequest represents the request body for updating a document
type UpdateDocumentRequest struct {
	Status             string   `json:"status"`
	DocumentType       string   `json:"document_type"`
	LegalCategory      string   `json:"legal_category"`
	JurisdictionLevel  string   `json:"jurisdiction_level"`
	State              string   `json:"state"`
	County             string   `json:"county"`
	CourtName          string   `json:"court_name"`
	JudicialDistrict   string   `json:"judicial_district"`
	CaseNumber         string   `json:"case_number"`
	Petitioner         string   `json:"petitioner"`
	Respondent         string   `json:"respondent"`
	Judge              string   `json:"judge"`
	Charges            []string `json:"charges"`
	KeyDates           []string `json:"key_dates"`
	InterviewSessionID *string  `json:"interview_session_id"`
}

// UpdateDocument handles PUT /api/documents/:id
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	getResult, err := h.documentService.GetDocument(c.Request.Context(), service.GetDocumentRequest{ID: id})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	doc := getResult.Document

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	// Update fields if provided
	if req.Status != "" {
		doc.Status = models.DocumentStatus(req.Status)
	}
	if req.DocumentType != "" {
		doc.DocumentType = entities.CleanString(req.DocumentType)
	}
	if req.LegalCategory != "" {
		doc.LegalCategory = entities.NormalizeCategory(req.LegalCategory)
	}
	if req.JurisdictionLevel != "" {
		doc.JurisdictionLevel = req.JurisdictionLevel
	}
	if req.State != "" {
		doc.State = entities.NormalizeState(req.State)
	}
	if req.County != "" {
		doc.County = entities.CleanString(req.County)
	}
	if req.CourtName != "" {
		doc.CourtName = entities.CleanString(req.CourtName)
	}
	if req.JudicialDistrict != "" {
		doc.JudicialDistrict = entities.CleanString(req.JudicialDistrict)
	}
	if req.CaseNumber != "" {
		doc.CaseNumber = entities.CleanString(req.CaseNumber)
	}
	if req.Petitioner != "" {
		doc.Petitioner = entities.CleanString(req.Petitioner)
	}
	if req.Respondent != "" {
		doc.Respondent = entities.CleanString(req.Respondent)
	}
	if req.Judge != "" {
		doc.Judge = entities.CleanString(req.Judge)
	}
	if req.Charges != nil {
		doc.Charges = models.StringList(req.Charges)
	}
	if req.KeyDates != nil {
		doc.KeyDates = models.StringList(req.KeyDates)
	}
	if req.InterviewSessionID != nil {
		sessionID, err := uuid.Parse(*req.InterviewSessionID)
		if err == nil {
			doc.InterviewSessionID = &sessionID
		}
	}

	updateResult, err := h.documentService.UpdateDocument(c.Request.Context(), service.UpdateDocumentRequest{Document: doc})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPDATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updateResult.Document,
	})
}

// ListDocuments handles GET /api/documents?user_id=...
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userIDStr := c.Query("user_id")
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_USER_ID",
				"message": "Valid user_id query parameter is required",
			},
		})
		return
	}

	var status *models.DocumentStatus
	if s := c.Query("status"); s != "" {
		ds := models.DocumentStatus(s)
		status = &ds
	}

	result, err := h.documentService.ListDocuments(c.Request.Context(), service.ListDocumentsRequest{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Documents,
	})
}

// GenerateDraft handles POST /api/documents/:id/generate
func (h *DocumentHandler) GenerateDraft(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	serviceReq := service.GenerateDraftRequest{
		DocumentID: id,
	}

	// Create job (synchronous, fast)
	result, err := h.draftService.GenerateDraft(c.Request.Context(), serviceReq)
	if err != nil {
		code := "GENERATION_FAILED"
		status := http.StatusInternalServerError
		switch err {
		case service.ErrDocumentNotFound:
			code = "NOT_FOUND"
			status = http.StatusNotFound
		case service.ErrMissingRequiredData:
			code = "MISSING_REQUIRED_DATA"
			status = http.StatusBadRequest
		case service.ErrInterviewNotComplete:
			code = "INTERVIEW_NOT_COMPLETE"
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	// Spawn background goroutine for actual processing
	// Use background context (not request context) to avoid cancellation
	if !result.Reused {
		go func() {
			bgCtx := context.Background()
			if err := h.draftService.ProcessDraft(bgCtx, result.JobID); err != nil {
				// Error is stored in job.ErrorMessage; clients poll status
				log.Printf("Generation job %s failed: %v", result.JobID, err)
			}
		}()
	}

	// Return immediately (within 100ms)
	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"data": gin.H{
			"job_id":  result.JobID,
			"status":  "pending",
			"message": "Generation job created. Poll /api/jobs/:id for updates.",
		},
	})
}

// GetJobStatus handles GET /api/jobs/:id
func (h *DocumentHandler) GetJobStatus(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid job ID format",
			},
		})
		return
	}

	result, err := h.draftService.GetJobStatus(c.Request.Context(), service.GetJobStatusRequest{JobID: id})
	if err != nil {
		if err == service.ErrJobNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Generation job not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Job,
	})
}

package api

import (
	"net/http"
	"strconv"

	"rentdesk/server/internal/models"
	"rentdesk/server/internal/store"

	"github.com/gin-gonic/gin"
)

// ListDocuments returns document metadata visible to the manager,
// optionally filtered by tenant or property.
func (h *Handler) ListDocuments(c *gin.Context) {
	claims := currentClaims(c)

	tenantID, ok := uintQuery(c, "tenant_id")
	if !ok {
		return
	}
	propertyID, ok := uintQuery(c, "property_id")
	if !ok {
		return
	}
	filter := store.DocumentFilter{
		TenantID:   tenantID,
		PropertyID: propertyID,
	}
	documents, err := h.store.ListDocuments(claims.UserID, filter)
	if err != nil {
		h.respondError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, documents)
}

func (h *Handler) GetDocument(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	document, err := h.store.GetDocument(claims.UserID, id)
	if err != nil {
		h.respondError(c, err, "Failed to load document")
		return
	}
	c.JSON(http.StatusOK, document)
}

// UploadDocument stores the file and records its metadata. Optional
// tenant_id/property_id form fields attach the document to an entity.
func (h *Handler) UploadDocument(c *gin.Context) {
	claims := currentClaims(c)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	tenantID := formUint(c, "tenant_id")
	propertyID := formUint(c, "property_id")
	if propertyID != nil {
		if _, err := h.store.GetProperty(claims.UserID, *propertyID); err != nil {
			h.respondError(c, err, "Failed to resolve property")
			return
		}
	}
	if tenantID != nil {
		if _, err := h.store.GetTenant(claims.UserID, *tenantID); err != nil {
			h.respondError(c, err, "Failed to resolve tenant")
			return
		}
	}

	object, err := h.files.Save(header)
	if err != nil {
		h.logger.WithError(err).Error("Failed to store document")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store document"})
		return
	}

	document := &models.Document{
		Name:       object.Name,
		DocType:    c.PostForm("doc_type"),
		Size:       object.Size,
		MimeType:   object.MimeType,
		StorageURL: object.URL,
		StorageKey: object.Key,
		TenantID:   tenantID,
		PropertyID: propertyID,
	}
	if err := h.store.CreateDocument(document); err != nil {
		h.files.Remove(object.Key)
		h.respondError(c, err, "Failed to record document")
		return
	}

	c.JSON(http.StatusCreated, document)
}

// DeleteDocument removes the metadata row and, best effort, the stored
// object behind it.
func (h *Handler) DeleteDocument(c *gin.Context) {
	claims := currentClaims(c)
	id, ok := idParam(c)
	if !ok {
		return
	}

	document, err := h.store.GetDocument(claims.UserID, id)
	if err != nil {
		h.respondError(c, err, "Failed to load document")
		return
	}

	if err := h.store.DeleteDocument(claims.UserID, id); err != nil {
		h.respondError(c, err, "Failed to delete document")
		return
	}
	h.files.Remove(document.StorageKey)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func formUint(c *gin.Context, name string) *uint {
	raw := c.PostForm(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staff-promotion-api/config"
	"staff-promotion-api/models"
)

func uploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

// UploadDocument attaches a file to a promotion request. The file is stored
// on disk under a generated name; the original name is kept on the row.
func UploadDocument(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request models.PromotionRequest
	if err := config.DB.Where("id = ?", requestID).First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promotion request not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	storedName := uuid.NewString() + filepath.Ext(file.Filename)
	destination := filepath.Join(uploadPath(), storedName)
	if err := c.SaveUploadedFile(file, destination); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	document := models.Document{
		RequestID:    request.ID,
		OriginalName: filepath.Base(file.Filename),
		StoredName:   storedName,
		FilePath:     destination,
		FileSize:     file.Size,
		ContentType:  file.Header.Get("Content-Type"),
		DocumentType: models.NormalizeDocumentType(c.PostForm("document_type")),
		Description:  c.PostForm("description"),
		UploadedByID: userID,
	}
	if err := config.DB.Create(&document).Error; err != nil {
		os.Remove(destination)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"document": document})
}

// GetDocumentsByRequest lists the documents attached to a request.
func GetDocumentsByRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var documents []models.Document
	if err := config.DB.Where("promotion_request_id = ?", requestID).
		Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents, "total": len(documents)})
}

// ListDocuments lists documents, optionally filtered by uploader or type.
func ListDocuments(c *gin.Context) {
	query := config.DB.Model(&models.Document{})

	if uploader := c.Query("uploader_id"); uploader != "" {
		query = query.Where("uploaded_by = ?", uploader)
	}
	if documentType := c.Query("type"); documentType != "" {
		query = query.Where("document_type = ?", models.NormalizeDocumentType(documentType))
	}

	var documents []models.Document
	if err := query.Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents, "total": len(documents)})
}

// DownloadDocument streams a stored file back under its original name.
func DownloadDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "documentId")
	if !ok {
		return
	}

	var document models.Document
	if err := config.DB.Where("id = ?", id).First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if _, err := os.Stat(document.FilePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File missing from storage"})
		return
	}

	c.FileAttachment(document.FilePath, document.OriginalName)
}

// DeleteDocument removes the row and then the file, best effort on the file.
func DeleteDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "documentId")
	if !ok {
		return
	}

	var document models.Document
	if err := config.DB.Where("id = ?", id).First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	// Only the uploader or an admin may remove a document.
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if role, _ := currentUserRole(c); document.UploadedByID != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to delete this document"})
		return
	}

	if err := config.DB.Delete(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	os.Remove(document.FilePath)

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

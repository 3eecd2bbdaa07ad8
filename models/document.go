package models

import (
	"strings"
	"time"
)

type DocumentType string

const (
	DocumentCV                   DocumentType = "CV"
	DocumentPublications         DocumentType = "PUBLICATIONS"
	DocumentRecommendationLetter DocumentType = "RECOMMENDATION_LETTER"
	DocumentTeachingEvaluation   DocumentType = "TEACHING_EVALUATION"
	DocumentResearchProposal     DocumentType = "RESEARCH_PROPOSAL"
	DocumentContract             DocumentType = "CONTRACT"
	DocumentCertificate          DocumentType = "CERTIFICATE"
	DocumentOther                DocumentType = "OTHER"
)

// NormalizeDocumentType maps a free-form type string to a known document
// type, falling back to OTHER.
func NormalizeDocumentType(s string) DocumentType {
	switch DocumentType(strings.ToUpper(strings.TrimSpace(s))) {
	case DocumentCV, DocumentPublications, DocumentRecommendationLetter,
		DocumentTeachingEvaluation, DocumentResearchProposal,
		DocumentContract, DocumentCertificate:
		return DocumentType(strings.ToUpper(strings.TrimSpace(s)))
	}
	return DocumentOther
}

type Document struct {
	ID           uint         `gorm:"primaryKey;column:id" json:"id"`
	RequestID    uint         `gorm:"column:promotion_request_id" json:"promotion_request_id"`
	OriginalName string       `gorm:"column:original_name" json:"original_name"`
	StoredName   string       `gorm:"column:stored_name" json:"stored_name"`
	FilePath     string       `gorm:"column:file_path" json:"file_path"`
	FileSize     int64        `gorm:"column:file_size" json:"file_size"`
	ContentType  string       `gorm:"column:content_type" json:"content_type"`
	DocumentType DocumentType `gorm:"column:document_type" json:"document_type"`
	Description  string       `gorm:"column:description;type:text" json:"description,omitempty"`
	UploadedByID uint         `gorm:"column:uploaded_by" json:"uploaded_by"`
	UploadedAt   time.Time    `gorm:"column:uploaded_at;autoCreateTime" json:"uploaded_at"`

	UploadedBy *User `gorm:"foreignKey:UploadedByID" json:"uploader,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}

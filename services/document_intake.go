package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"time"

	"fuel-distribution-api/config"
	"fuel-distribution-api/models"
)

// The form fields an application may attach documents under. Up to five
// additional documents arrive as otherDoc0..otherDoc4.
const maxOtherDocuments = 5

// uploadObjectFunc stores one document and returns its storage path.
// Swappable in tests.
var uploadObjectFunc = func(objectKey, contentType string, body io.Reader) (string, error) {
	return config.StorageAdmin().Upload(objectKey, contentType, body)
}

// CollectApplicationDocuments uploads every document present in the
// multipart form and returns the resulting path map. Each slot is attempted
// independently: an upload failure is logged and the slot omitted, it never
// fails the submission.
func CollectApplicationDocuments(form *multipart.Form, submittedAt time.Time) models.DocumentPaths {
	var paths models.DocumentPaths
	if form == nil {
		return paths
	}

	if p, ok := uploadDocumentField(form, "w9", submittedAt); ok {
		paths.W9 = &p
	}
	if p, ok := uploadDocumentField(form, "taxExemptionCert", submittedAt); ok {
		paths.TaxExemptionCert = &p
	}
	if p, ok := uploadDocumentField(form, "coi", submittedAt); ok {
		paths.COI = &p
	}

	for i := 0; i < maxOtherDocuments; i++ {
		field := fmt.Sprintf("otherDoc%d", i)
		if p, ok := uploadDocumentField(form, field, submittedAt); ok {
			paths.OtherDocs = append(paths.OtherDocs, p)
		}
	}

	return paths
}

// uploadDocumentField uploads the file attached under field, if any. The
// storage key is derived from the submission time, the field name and the
// original filename, so keys never collide across submissions.
func uploadDocumentField(form *multipart.Form, field string, submittedAt time.Time) (string, bool) {
	files := form.File[field]
	if len(files) == 0 {
		return "", false
	}

	fh := files[0]
	objectKey := fmt.Sprintf("%d-%s-%s", submittedAt.UnixMilli(), field, fh.Filename)

	src, err := fh.Open()
	if err != nil {
		log.Printf("Failed to open %s upload %q: %v", field, fh.Filename, err)
		return "", false
	}
	defer src.Close()

	path, err := uploadObjectFunc(objectKey, fh.Header.Get("Content-Type"), src)
	if err != nil {
		log.Printf("Failed to upload %s document %q: %v", field, fh.Filename, err)
		return "", false
	}

	return path, true
}

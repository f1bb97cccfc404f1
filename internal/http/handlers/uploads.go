package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	intconfig "dealership/internal/config"
	"dealership/internal/http/middleware"
	"dealership/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadedFile is the descriptor returned for every stored file.
type UploadedFile struct {
	ID         int64  `json:"id"`
	DocumentID string `json:"documentId"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Mime       string `json:"mime"`
	Size       int64  `json:"size"`
}

// POST /api/upload
//
// Multipart dengan field "files" (boleh lebih dari satu). Balasan berupa
// array deskriptor, dipakai untuk melampirkan gambar sebelum create/update.
func Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "form multipart tidak valid", err)
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		RespondError(c, http.StatusBadRequest, "tidak ada file yang diunggah", nil)
		return
	}

	if err := os.MkdirAll(env.UploadDir, 0o755); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyiapkan folder upload", err)
		return
	}

	out := make([]UploadedFile, 0, len(files))
	for _, fh := range files {
		docID := uuid.NewString()
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		stored := docID + ext
		dst := filepath.Join(env.UploadDir, stored)

		if err := c.SaveUploadedFile(fh, dst); err != nil {
			RespondError(c, http.StatusInternalServerError, "gagal menyimpan file", err)
			return
		}

		desc := UploadedFile{
			DocumentID: docID,
			Name:       fh.Filename,
			URL:        strings.TrimRight(env.UploadBaseURL, "/") + "/" + stored,
			Mime:       fh.Header.Get("Content-Type"),
			Size:       fh.Size,
		}

		res, err := intconfig.DB.Exec(`
			INSERT INTO uploads (document_id, name, url, mime, size, created_at)
			VALUES (?, ?, ?, ?, ?, NOW())
		`, desc.DocumentID, desc.Name, desc.URL, desc.Mime, desc.Size)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "gagal mencatat file", err)
			return
		}
		desc.ID, _ = res.LastInsertId()

		out = append(out, desc)
	}

	utils.LogEvent(middleware.GetRequestID(c), "upload", "store",
		strings.Join(fileNames(out), ", "))

	c.JSON(http.StatusOK, out)
}

func fileNames(files []UploadedFile) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

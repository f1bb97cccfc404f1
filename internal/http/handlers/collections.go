package handlers

import (
	"net/http"

	intconfig "dealership/internal/config"
	"dealership/internal/repositories"
	"dealership/internal/resources"

	"github.com/gin-gonic/gin"
)

// The reference-table screens all share one CRUD shape; each resource gets
// handlers bound to its static schema.

// GET /api/<resource>
func ListCollection(s resources.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		repo := repositories.CollectionRepository{DB: intconfig.DB}
		records, meta, err := repo.List(s, ParseListQuery(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		RespondList(c, records, meta)
	}
}

// GET /api/<resource>/:documentId
func GetCollectionRecord(s resources.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		repo := repositories.CollectionRepository{DB: intconfig.DB}
		record, err := repo.GetByDocumentID(s, c.Param("documentId"))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		RespondData(c, http.StatusOK, record)
	}
}

// POST /api/<resource>
func CreateCollectionRecord(s resources.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dataEnvelope
		if !BindJSONOrError(c, &body) {
			return
		}
		if body.Data == nil {
			RespondError(c, http.StatusBadRequest, "field data wajib diisi", nil)
			return
		}

		repo := repositories.CollectionRepository{DB: intconfig.DB}
		record, err := repo.Create(s, body.Data)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		RespondData(c, http.StatusCreated, record)
	}
}

// PUT /api/<resource>/:documentId
func UpdateCollectionRecord(s resources.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dataEnvelope
		if !BindJSONOrError(c, &body) {
			return
		}
		if body.Data == nil {
			RespondError(c, http.StatusBadRequest, "field data wajib diisi", nil)
			return
		}

		repo := repositories.CollectionRepository{DB: intconfig.DB}
		record, err := repo.Update(s, c.Param("documentId"), body.Data)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		RespondData(c, http.StatusOK, record)
	}
}

// DELETE /api/<resource>/:documentId
func DeleteCollectionRecord(s resources.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		repo := repositories.CollectionRepository{DB: intconfig.DB}
		if err := repo.Delete(s, c.Param("documentId")); err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": s.Label + " berhasil dihapus"})
	}
}

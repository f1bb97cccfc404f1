package handlers

import (
	"fmt"
	"net/http"
	"strings"

	intconfig "dealership/internal/config"
	"dealership/internal/http/middleware"
	"dealership/internal/repositories"
	"dealership/internal/services"

	"github.com/gin-gonic/gin"
)

func spkService(c *gin.Context) services.SPKService {
	return services.SPKService{
		OrderRepo: repositories.OrderRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/orders
func GetOrders(c *gin.Context) {
	orders, meta, err := spkService(c).List(ParseListQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondList(c, orders, meta)
}

// GET /api/orders/:documentId
func GetOrderByDocumentID(c *gin.Context) {
	order, err := spkService(c).Get(c.Param("documentId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, order)
}

type orderFlagsPayload struct {
	Finish   *bool `json:"finish"`
	Editable *bool `json:"editable"`
}

// PUT /api/orders/:documentId/flags
//
// finish dan editable adalah satu-satunya field SPK yang boleh diubah.
func UpdateOrderFlags(c *gin.Context) {
	var payload orderFlagsPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if payload.Finish == nil && payload.Editable == nil {
		RespondError(c, http.StatusBadRequest, "tidak ada field yang diubah", nil)
		return
	}

	order, err := spkService(c).SetFlags(c.Param("documentId"), payload.Finish, payload.Editable)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, order)
}

// GET /api/orders/:documentId/document?disposition=inline|attachment
func GetOrderDocument(c *gin.Context) {
	svc := services.SPKPDFService{
		OrderRepo: repositories.OrderRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.Generate(c.Param("documentId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	disposition := "attachment"
	if strings.EqualFold(strings.TrimSpace(c.Query("disposition")), "inline") {
		disposition = "inline"
	}

	c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/orders/export?format=xlsx|csv
func ExportOrders(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.Query("format")))
	if format != "xlsx" {
		format = "csv"
	}

	svc := services.ExportService{
		OrderRepo: repositories.OrderRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}

	data, filename, contentType, err := svc.Orders(ParseListQuery(c), format)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

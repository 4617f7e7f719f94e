package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/larekshop/larek-backend/internal/requestdata"
	"github.com/larekshop/larek-backend/internal/services"
)

// ContactInfo is the static payload behind GET /api/contacts.
type ContactInfo struct {
	ShopName string `json:"shop_name" yaml:"shop_name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Address  string `json:"address" yaml:"address"`
}

type CatalogHandler struct {
	catalogService services.CatalogService
	contacts       ContactInfo
}

func NewCatalogHandler(catalogService services.CatalogService, contacts ContactInfo) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, contacts: contacts}
}

func (ch *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := ch.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"products": products})
}

func (ch *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := ch.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

func (ch *CatalogHandler) Contacts(c *gin.Context) {
	RespondOK(c, ch.contacts)
}

func (ch *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	product, err := ch.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"product": product})
}

type productForm struct {
	Product  services.ProductInput   `json:"product"`
	Versions []services.VersionInput `json:"versions"`
}

func (ch *CatalogHandler) CreateProduct(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req productForm
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := ch.catalogService.CreateProduct(c.Request.Context(), rd.UserID, req.Product, req.Versions)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ch *CatalogHandler) UpdateProduct(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req productForm
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := ch.catalogService.UpdateProduct(c.Request.Context(), rd.UserID, productID, req.Product, req.Versions)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ch *CatalogHandler) DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ch.catalogService.DeleteProduct(c.Request.Context(), productID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": productID})
}

package handlers

import (
	"net/http"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/gin-gonic/gin"
)

// InventoryHandler serves categorias, productos and movimientos
type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// @Summary List Inventory Categories
// @Tags Inventory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /categorias [get]
func (h *InventoryHandler) IndexCategories(c *gin.Context) {
	query := parseListQuery(c)
	categories, total, err := h.inventoryService.ListCategories(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categorias": categories, "pagination": paginationMeta(query, total)})
}

// @Summary Get Inventory Category
// @Tags Inventory
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.InventoryCategory
// @Security BearerAuth
// @Router /categorias/{id} [get]
func (h *InventoryHandler) ShowCategory(c *gin.Context) {
	category, err := h.inventoryService.FindCategoryByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categoria": category})
}

type CreateCategoryRequest struct {
	Name        string  `json:"nombre_categoria" binding:"required"`
	Description *string `json:"descripcion"`
}

// @Summary Create Inventory Category
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category data"
// @Success 201 {object} models.InventoryCategory
// @Security BearerAuth
// @Router /categorias [post]
func (h *InventoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := BindNestedOrFlat(c, "categoria", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre de la categoría es requerido"})
		return
	}

	category := &models.InventoryCategory{Name: req.Name, Description: req.Description}
	if err := h.inventoryService.CreateCategory(c.Request.Context(), category, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"categoria": category})
}

type UpdateCategoryRequest struct {
	Name        *string `json:"nombre_categoria"`
	Description *string `json:"descripcion"`
}

// @Summary Update Inventory Category
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.InventoryCategory
// @Security BearerAuth
// @Router /categorias/{id} [put]
func (h *InventoryHandler) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := BindNestedOrFlat(c, "categoria", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.inventoryService.UpdateCategory(c.Request.Context(), parseID(c, "id"), req.Name, req.Description, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categoria": category})
}

// @Summary Delete Inventory Category
// @Tags Inventory
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /categorias/{id} [delete]
func (h *InventoryHandler) DestroyCategory(c *gin.Context) {
	if err := h.inventoryService.DeleteCategory(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categoría eliminada"})
}

// @Summary List Products
// @Tags Inventory
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name"
// @Param id_categoria query int false "Filter by category"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /productos [get]
func (h *InventoryHandler) IndexProducts(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["id_categoria"] = c.Query("id_categoria")

	products, total, err := h.inventoryService.ListProducts(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"productos": products, "pagination": paginationMeta(query, total)})
}

// @Summary List Low Stock Products
// @Description Active products at or below their minimum stock
// @Tags Inventory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /productos/stock-bajo [get]
func (h *InventoryHandler) LowStock(c *gin.Context) {
	products, err := h.inventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"productos": products, "total": len(products)})
}

// @Summary Get Product
// @Tags Inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Security BearerAuth
// @Router /productos/{id} [get]
func (h *InventoryHandler) ShowProduct(c *gin.Context) {
	product, err := h.inventoryService.FindProductByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"producto": product})
}

type CreateProductRequest struct {
	Name         string  `json:"nombre_producto" binding:"required"`
	Description  *string `json:"descripcion"`
	CategoryID   *uint   `json:"id_categoria"`
	UnitPrice    float64 `json:"precio_unitario"`
	CurrentStock int     `json:"stock_actual"`
	MinimumStock int     `json:"stock_minimo"`
}

// @Summary Create Product
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} models.Product
// @Security BearerAuth
// @Router /productos [post]
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := BindNestedOrFlat(c, "producto", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre del producto es requerido"})
		return
	}

	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		UnitPrice:    req.UnitPrice,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
	}
	if err := h.inventoryService.CreateProduct(c.Request.Context(), product, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"producto": product})
}

// UpdateProductRequest carries no stock field: stock only changes through
// inventory movements.
type UpdateProductRequest struct {
	Name         *string  `json:"nombre_producto"`
	Description  *string  `json:"descripcion"`
	CategoryID   *uint    `json:"id_categoria"`
	UnitPrice    *float64 `json:"precio_unitario"`
	MinimumStock *int     `json:"stock_minimo"`
}

// @Summary Update Product
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Product
// @Security BearerAuth
// @Router /productos/{id} [put]
func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := BindNestedOrFlat(c, "producto", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.inventoryService.UpdateProduct(c.Request.Context(), parseID(c, "id"), services.UpdateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		UnitPrice:    req.UnitPrice,
		MinimumStock: req.MinimumStock,
	}, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"producto": product})
}

// @Summary Delete Product
// @Description Deactivates the product; its movement history stays
// @Tags Inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /productos/{id} [delete]
func (h *InventoryHandler) DestroyProduct(c *gin.Context) {
	if err := h.inventoryService.DeleteProduct(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado"})
}

// @Summary List Inventory Movements
// @Tags Inventory
// @Produce json
// @Param id_producto query int false "Filter by product"
// @Param tipo_movimiento query string false "Filter by movement type"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /movimientos [get]
func (h *InventoryHandler) IndexMovements(c *gin.Context) {
	query := parseListQuery(c)
	query.Filters["id_producto"] = c.Query("id_producto")
	query.Filters["tipo_movimiento"] = c.Query("tipo_movimiento")

	movements, total, err := h.inventoryService.ListMovements(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movimientos": movements, "pagination": paginationMeta(query, total)})
}

// @Summary Get Inventory Movement
// @Tags Inventory
// @Produce json
// @Param id path int true "Movement ID"
// @Success 200 {object} models.InventoryMovement
// @Security BearerAuth
// @Router /movimientos/{id} [get]
func (h *InventoryHandler) ShowMovement(c *gin.Context) {
	movement, err := h.inventoryService.FindMovementByID(c.Request.Context(), parseID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movimiento": movement})
}

type CreateMovementRequest struct {
	ProductID    uint    `json:"id_producto" binding:"required"`
	Type         string  `json:"tipo_movimiento" binding:"required"`
	Quantity     int     `json:"cantidad" binding:"required"`
	Observations *string `json:"observaciones"`
}

// @Summary Register Inventory Movement
// @Description Stores the movement and adjusts the product stock atomically
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body CreateMovementRequest true "Movement data"
// @Success 201 {object} models.InventoryMovement
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /movimientos [post]
func (h *InventoryHandler) CreateMovement(c *gin.Context) {
	var req CreateMovementRequest
	if err := BindNestedOrFlat(c, "movimiento", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ProductID == 0 || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_producto y tipo_movimiento son requeridos"})
		return
	}

	movement := &models.InventoryMovement{
		ProductID:    req.ProductID,
		Type:         req.Type,
		Quantity:     req.Quantity,
		Observations: req.Observations,
	}
	if err := h.inventoryService.RegisterMovement(c.Request.Context(), movement, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"movimiento": movement})
}

// @Summary Void Inventory Movement
// @Description Deactivates the movement and reverses its stock effect
// @Tags Inventory
// @Produce json
// @Param id path int true "Movement ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /movimientos/{id} [delete]
func (h *InventoryHandler) DestroyMovement(c *gin.Context) {
	if err := h.inventoryService.VoidMovement(c.Request.Context(), parseID(c, "id"), middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimiento anulado"})
}

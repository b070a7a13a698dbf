// Package http implements the inbound REST API of the back office. It
// coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/client"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/domain/model/supplier"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the dashboard API routes to their command and query handlers.
type Server struct {
	clientHandler   commands.ClientCommandHandler
	supplierHandler commands.SupplierCommandHandler
	productHandler  commands.ProductCommandHandler

	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler

	getAllClientsHandler   queries.GetAllClientsQueryHandler
	getAllSuppliersHandler queries.GetAllSuppliersQueryHandler
	getAllProductsHandler  queries.GetAllProductsQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(
	clientHandler commands.ClientCommandHandler,
	supplierHandler commands.SupplierCommandHandler,
	productHandler commands.ProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllClientsHandler queries.GetAllClientsQueryHandler,
	getAllSuppliersHandler queries.GetAllSuppliersQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		clientHandler:          clientHandler,
		supplierHandler:        supplierHandler,
		productHandler:         productHandler,
		createOrderHandler:     createOrderHandler,
		updateStatusHandler:    updateStatusHandler,
		deleteOrderHandler:     deleteOrderHandler,
		getAllClientsHandler:   getAllClientsHandler,
		getAllSuppliersHandler: getAllSuppliersHandler,
		getAllProductsHandler:  getAllProductsHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/clients", s.GetClients)
	v1.POST("/clients", s.CreateClient)
	v1.PUT("/clients/:id", s.UpdateClient)
	v1.DELETE("/clients/:id", s.DeleteClient)

	v1.GET("/suppliers", s.GetSuppliers)
	v1.POST("/suppliers", s.CreateSupplier)
	v1.PUT("/suppliers/:id", s.UpdateSupplier)
	v1.DELETE("/suppliers/:id", s.DeleteSupplier)

	v1.GET("/products", s.GetProducts)
	v1.POST("/products", s.CreateProduct)
	v1.PUT("/products/:id", s.UpdateProduct)
	v1.DELETE("/products/:id", s.DeleteProduct)

	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
	v1.DELETE("/orders/:id", s.DeleteOrder)
}

// GetClients handles GET /api/v1/clients.
func (s *Server) GetClients(ctx echo.Context) error {
	clients, err := s.getAllClientsHandler.Handle(ctx.Request().Context(), queries.NewGetAllClientsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ClientResponse, len(clients))
	for i, c := range clients {
		response[i] = ClientResponse{
			ID:    c.ID,
			Name:  c.Name,
			Phone: c.Phone,
			Email: c.Email,
			TaxID: c.TaxID,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(req.Name, req.Phone, req.Email, req.TaxID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.clientHandler.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toClientResponse(created))
}

// UpdateClient handles PUT /api/v1/clients/:id.
func (s *Server) UpdateClient(ctx echo.Context) error {
	var req ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClientCommand(ctx.Param("id"), req.Name, req.Phone, req.Email, req.TaxID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.clientHandler.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toClientResponse(updated))
}

// DeleteClient handles DELETE /api/v1/clients/:id.
func (s *Server) DeleteClient(ctx echo.Context) error {
	cmd, err := commands.NewDeleteClientCommand(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.clientHandler.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetSuppliers handles GET /api/v1/suppliers.
func (s *Server) GetSuppliers(ctx echo.Context) error {
	suppliers, err := s.getAllSuppliersHandler.Handle(ctx.Request().Context(), queries.NewGetAllSuppliersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SupplierResponse, len(suppliers))
	for i, sup := range suppliers {
		response[i] = SupplierResponse{
			ID:          sup.ID,
			Name:        sup.Name,
			Phone:       sup.Phone,
			Email:       sup.Email,
			ServiceType: sup.ServiceType,
			Active:      sup.Active,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateSupplier handles POST /api/v1/suppliers.
func (s *Server) CreateSupplier(ctx echo.Context) error {
	var req SupplierRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateSupplierCommand(req.Name, req.Phone, req.Email, req.ServiceType)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.supplierHandler.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toSupplierResponse(created))
}

// UpdateSupplier handles PUT /api/v1/suppliers/:id.
func (s *Server) UpdateSupplier(ctx echo.Context) error {
	var req SupplierRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	// absent flag means "stay active"
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	cmd, err := commands.NewUpdateSupplierCommand(
		ctx.Param("id"), req.Name, req.Phone, req.Email, req.ServiceType, active)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.supplierHandler.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSupplierResponse(updated))
}

// DeleteSupplier handles DELETE /api/v1/suppliers/:id.
func (s *Server) DeleteSupplier(ctx echo.Context) error {
	cmd, err := commands.NewDeleteSupplierCommand(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.supplierHandler.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price,
			AvailableQty: p.AvailableQty,
			SupplierID:   p.SupplierID,
			SupplierName: p.SupplierName,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		req.Name, req.Description, price, req.AvailableQty, req.SupplierID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.productHandler.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toProductResponse(created))
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(
		ctx.Param("id"), req.Name, req.Description, price, req.AvailableQty, req.SupplierID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.productHandler.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProductResponse(updated))
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	cmd, err := commands.NewDeleteProductCommand(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.productHandler.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:          o.ID,
			ClientID:    o.ClientID,
			ClientName:  o.ClientName,
			ProductID:   o.ProductID,
			ProductName: o.ProductName,
			Quantity:    o.Quantity,
			Value:       o.Value,
			InvoiceRef:  o.InvoiceRef,
			Status:      o.Status,
			StatusLabel: o.StatusLabel,
			Terminal:    o.Terminal,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.ClientID, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := parseOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Status(req.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func parseOrderID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return id, nil
}

// writeError maps application errors to HTTP status codes: terminal-state
// rejections become conflicts, local validation failures bad requests,
// unknown references not found, and everything else (transport and shape
// failures from the collaborator) a bad gateway.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusBadGateway
	switch {
	case order.IsTerminalTransitionError(err):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func toClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:    c.ID(),
		Name:  c.Name(),
		Phone: c.Phone(),
		Email: c.Email(),
		TaxID: c.TaxID(),
	}
}

func toSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID(),
		Name:        s.Name(),
		Phone:       s.Phone(),
		Email:       s.Email(),
		ServiceType: s.ServiceType(),
		Active:      s.Active(),
	}
}

func toProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID(),
		Name:         p.Name(),
		Description:  p.Description(),
		Price:        p.Price().Amount(),
		AvailableQty: p.AvailableQty(),
		SupplierID:   p.SupplierID(),
	}
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID(),
		ClientID:    o.ClientID(),
		ProductID:   o.ProductID(),
		Quantity:    o.Quantity(),
		Value:       o.Value().Amount(),
		InvoiceRef:  o.InvoiceRef(),
		Status:      o.Status().String(),
		StatusLabel: o.Status().DisplayLabel(),
		Terminal:    o.Status().IsTerminal(),
	}
}

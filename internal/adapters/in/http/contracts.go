package http

// Request and response contracts for the dashboard API. The inbound surface
// speaks English field names; the Portuguese wire tokens appear only in the
// order status values, which pass through verbatim.

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Client payloads.
type (
	ClientRequest struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
		TaxID string `json:"taxId"`
	}

	ClientResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
		TaxID string `json:"taxId"`
	}
)

// Supplier payloads.
type (
	SupplierRequest struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		ServiceType string `json:"serviceType"`
		Active      *bool  `json:"active,omitempty"`
	}

	SupplierResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		ServiceType string `json:"serviceType"`
		Active      bool   `json:"active"`
	}
)

// Product payloads.
type (
	ProductRequest struct {
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		Price        float64 `json:"price"`
		AvailableQty int     `json:"availableQty"`
		SupplierID   string  `json:"supplierId,omitempty"`
	}

	ProductResponse struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		Price        float64 `json:"price"`
		AvailableQty int     `json:"availableQty"`
		SupplierID   string  `json:"supplierId,omitempty"`
		SupplierName string  `json:"supplierName,omitempty"`
	}
)

// Order payloads.
type (
	CreateOrderRequest struct {
		ClientID  string `json:"clientId"`
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status"`
	}

	OrderResponse struct {
		ID          int64   `json:"id"`
		ClientID    string  `json:"clientId"`
		ClientName  string  `json:"clientName"`
		ProductID   string  `json:"productId"`
		ProductName string  `json:"productName"`
		Quantity    int     `json:"quantity"`
		Value       float64 `json:"value"`
		InvoiceRef  string  `json:"invoiceRef,omitempty"`
		Status      string  `json:"status"`
		StatusLabel string  `json:"statusLabel"`
		Terminal    bool    `json:"terminal"`
	}
)

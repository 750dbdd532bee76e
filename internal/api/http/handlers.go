package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodie-express/internal/catalog"
	"foodie-express/internal/domain"
	"foodie-express/internal/service"

	"github.com/gorilla/mux"
)

// userHeader carries the caller's identity. Authentication itself is
// handled upstream of this service.
const userHeader = "X-User-Email"

type Handler struct {
	Catalog service.CatalogServiceInterface
	Menus   service.MenuServiceInterface
	Carts   service.CartServiceInterface
	Orders  service.OrderServiceInterface
	Profile service.ProfileServiceInterface
}

func NewHandler(catalogSvc service.CatalogServiceInterface, menuSvc service.MenuServiceInterface,
	cartSvc service.CartServiceInterface, orderSvc service.OrderServiceInterface,
	profileSvc service.ProfileServiceInterface) *Handler {
	return &Handler{
		Catalog: catalogSvc,
		Menus:   menuSvc,
		Carts:   cartSvc,
		Orders:  orderSvc,
		Profile: profileSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.browseRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/featured", h.featuredRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu/categories", h.getMenuCategories).Methods("GET")
	r.HandleFunc("/api/cuisines", h.getCuisines).Methods("GET")

	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/{sessionId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{sessionId}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{sessionId}/items/{itemId}", h.setCartQuantity).Methods("PUT")

	r.HandleFunc("/api/orders", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/tracking", h.trackOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/profile", h.updateProfile).Methods("PUT")
	r.HandleFunc("/api/profile/stats", h.getProfileStats).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "foodie-express",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) browseRestaurants(w http.ResponseWriter, r *http.Request) {
	spec := catalog.FilterSpec{
		Query:   r.URL.Query().Get("query"),
		Cuisine: r.URL.Query().Get("cuisine"),
		SortKey: r.URL.Query().Get("sort"),
	}
	if spec.Cuisine == "" {
		spec.Cuisine = catalog.CuisineAll
	}
	restaurants, err := h.Catalog.Browse(r.Context(), spec)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) featuredRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.Featured(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Catalog.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.Create(r.Context(), &restaurant); err != nil {
		if errors.Is(err, service.ErrInvalidRestaurant) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, restaurant)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.MenuFilter{
		Category:   query.Get("category"),
		Vegetarian: query.Get("vegetarian") == "true",
		Spicy:      query.Get("spicy") == "true",
		Popular:    query.Get("popular") == "true",
	}
	items, err := h.Menus.Menu(mux.Vars(r)["id"], filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID = mux.Vars(r)["id"]
	if err := h.Menus.Create(&item); err != nil {
		if errors.Is(err, service.ErrInvalidMenuItem) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) getMenuCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menus.Categories(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCuisines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Cuisines())
}

type addItemRequest struct {
	SessionID    string `json:"session_id"`
	RestaurantID string `json:"restaurant_id"`
	ItemID       string `json:"item_id"`
	Quantity     *int   `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Omitted quantity means one; an explicit bad value is rejected by the
	// cart service.
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	sessionID, err := h.Carts.AddItem(req.SessionID, req.RestaurantID, req.ItemID, quantity)
	if err != nil {
		RecordCartOperation("add", false)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	RecordCartOperation("add", true)

	view, err := h.Carts.View(sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"cart":       view,
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Carts.View(mux.Vars(r)["sessionId"])
	if err != nil {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Carts.Clear(mux.Vars(r)["sessionId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		http.Error(w, "Invalid quantity payload", http.StatusBadRequest)
		return
	}

	err := h.Carts.SetQuantity(vars["sessionId"], vars["itemId"], *req.Quantity)
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrLineNotFound):
		RecordCartOperation("set_quantity", false)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		RecordCartOperation("set_quantity", false)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	RecordCartOperation("set_quantity", true)

	view, err := h.Carts.View(vars["sessionId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		req.Email = r.Header.Get(userHeader)
	}

	order, err := h.Orders.Checkout(r.Context(), req)
	if err != nil {
		RecordOrderOperation("checkout", false)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	RecordOrderOperation("checkout", true)
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get(userHeader)
	if email == "" {
		http.Error(w, "Missing "+userHeader+" header", http.StatusBadRequest)
		return
	}
	orders, err := h.Orders.ListUserOrders(email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	view, err := h.Orders.Track(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, view.Order)
}

func (h *Handler) trackOrder(w http.ResponseWriter, r *http.Request) {
	view, err := h.Orders.Track(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Cancel(r.Context(), mux.Vars(r)["id"])
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		RecordOrderOperation("cancel", false)
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	case errors.Is(err, service.ErrNotCancellable):
		RecordOrderOperation("cancel", false)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		RecordOrderOperation("cancel", false)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	RecordOrderOperation("cancel", true)
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], domain.OrderStatus(req.Status))
	switch {
	case errors.Is(err, service.ErrUnknownStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.ReceiptQR(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get(userHeader)
	user, err := h.Profile.Me(email)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get(userHeader)
	var update service.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.Profile.Update(email, update)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) getProfileStats(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get(userHeader)
	stats, err := h.Profile.Stats(email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	recent, err := h.Profile.Recent(email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if recent == nil {
		recent = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats":         stats,
		"recent_orders": recent,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

package service

import (
	"context"
	"io"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"github.com/azor-ahai1/SwapSpace/internal/dto"
	"github.com/azor-ahai1/SwapSpace/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (resp dto.UserResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
	Logout(ctx context.Context, userID string) (err error)
	RefreshToken(ctx context.Context, refreshToken string) (resp dto.TokenPairResponse, err error)
	GetCurrentUser(ctx context.Context, userID string) (resp dto.UserResponse, err error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest, profileImage io.Reader) (resp dto.UserResponse, err error)
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) (err error)
	GetOrderHistory(ctx context.Context, userID string) (view repository.OrderHistoryView, err error)
	GetProductHistory(ctx context.Context, userID string) (view repository.ProductHistoryView, err error)
	GetDashboard(ctx context.Context, userID string) (view repository.DashboardView, err error)
	GetProfile(ctx context.Context, userID string) (view repository.ProfileView, err error)
	SendOTP(ctx context.Context, req dto.SendOTPRequest) (err error)
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, ownerID string, req dto.ProductRequest, images []io.Reader) (view repository.ProductDetailView, err error)
	GetProductByID(ctx context.Context, id string) (view repository.ProductDetailView, err error)
	GetProducts(ctx context.Context) (products []domain.Product, err error)
	GetProductsByCategory(ctx context.Context, categoryID string) (products []domain.Product, err error)
}

type CategoryService interface {
	CreateOrGetCategory(ctx context.Context, name string) (category domain.Category, err error)
	GetCategories(ctx context.Context) (categories []repository.CategoryCountView, err error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, callerID string, req dto.PlaceOrderRequest) (resp dto.OrderResponse, err error)
	CancelOrder(ctx context.Context, callerID string, req dto.CancelOrderRequest) (resp dto.OrderResponse, err error)
	AcceptOrder(ctx context.Context, callerID string, orderID string) (resp dto.OrderResponse, err error)
	RejectOrder(ctx context.Context, callerID string, orderID string) (resp dto.OrderResponse, err error)
	GetProductPendingOrders(ctx context.Context, productID string) (orders []repository.ProductOrderView, err error)
	GetProductOrders(ctx context.Context, productID string) (orders []repository.ProductOrderView, err error)
}

type MessageService interface {
	SendMessage(ctx context.Context, callerID string, req dto.SendMessageRequest) (message domain.Message, err error)
	GetConversation(ctx context.Context, callerID string, req dto.ConversationRequest) (messages []domain.Message, err error)
}

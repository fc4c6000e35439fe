package service

import (
	"context"
	"time"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"github.com/azor-ahai1/SwapSpace/internal/dto"
	"github.com/azor-ahai1/SwapSpace/internal/repository"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderServiceImpl drives the paired order/product state machine. Every
// transition is a conditional status swap, so an order that already left
// Pending (or a product that already left Available) fails the caller
// instead of silently double-applying.
type OrderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func CreateOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo, productRepo: productRepo, userRepo: userRepo}
}

func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, callerID string, req dto.PlaceOrderRequest) (resp dto.OrderResponse, err error) {
	buyerID, err := primitive.ObjectIDFromHex(req.Buyer)
	if err != nil {
		return resp, errs.ErrClient
	}
	productID, err := primitive.ObjectIDFromHex(req.Product)
	if err != nil {
		return resp, errs.ErrClient
	}

	if req.Buyer != callerID {
		return resp, errs.ErrNotLoggedIn
	}
	if req.Quantity <= 0 || req.Price <= 0 {
		return resp, errs.ErrClient
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	sellerID := product.Owner
	if req.Seller != "" && req.Seller != sellerID.Hex() {
		return resp, errs.ErrClient
	}
	if buyerID == sellerID {
		return resp, errs.ErrClient
	}

	var order domain.Order
	err = s.orderRepo.HandleTrx(ctx, func(ctx context.Context) error {
		// The swap out of Available is the linearization point: of two
		// concurrent buyers, exactly one gets past this line.
		if err := s.productRepo.UpdateProductStatus(ctx, productID, domain.ProductStatusAvailable, domain.ProductStatusOrdered); err != nil {
			if err == errs.ErrConflict {
				return errs.ErrProductNotAvailable
			}
			return err
		}

		order = domain.Order{
			Price:       req.Price,
			Quantity:    req.Quantity,
			OrderStatus: domain.OrderStatusPending,
			OrderDate:   time.Now(),
			Buyer:       buyerID,
			Seller:      sellerID,
			Product:     productID,
		}

		orderID, err := s.orderRepo.AddOrder(ctx, order)
		if err != nil {
			return err
		}

		order.ID = orderID
		return nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PlaceOrder").Msg("")
		return
	}

	return s.buildOrderResponse(ctx, order, product)
}

func (s *OrderServiceImpl) CancelOrder(ctx context.Context, callerID string, req dto.CancelOrderRequest) (resp dto.OrderResponse, err error) {
	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return resp, errs.ErrClient
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return resp, errs.ErrClient
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if order.Product != productID {
		return resp, errs.ErrClient
	}
	if callerID != order.Buyer.Hex() && callerID != order.Seller.Hex() {
		return resp, errs.ErrNotLoggedIn
	}

	return s.closeOrder(ctx, order, domain.OrderStatusCancelled, domain.ProductStatusAvailable)
}

func (s *OrderServiceImpl) AcceptOrder(ctx context.Context, callerID string, orderIDHex string) (resp dto.OrderResponse, err error) {
	order, err := s.getSellerOrder(ctx, callerID, orderIDHex)
	if err != nil {
		return
	}

	return s.closeOrder(ctx, order, domain.OrderStatusAccepted, domain.ProductStatusSold)
}

func (s *OrderServiceImpl) RejectOrder(ctx context.Context, callerID string, orderIDHex string) (resp dto.OrderResponse, err error) {
	order, err := s.getSellerOrder(ctx, callerID, orderIDHex)
	if err != nil {
		return
	}

	return s.closeOrder(ctx, order, domain.OrderStatusRejected, domain.ProductStatusAvailable)
}

func (s *OrderServiceImpl) getSellerOrder(ctx context.Context, callerID string, orderIDHex string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(orderIDHex)
	if err != nil {
		return order, errs.ErrClient
	}

	order, err = s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if callerID != order.Seller.Hex() {
		return order, errs.ErrNotLoggedIn
	}

	return order, nil
}

// closeOrder drives a Pending order into a terminal status and moves the
// product to its matching status inside one transaction.
func (s *OrderServiceImpl) closeOrder(ctx context.Context, order domain.Order, orderStatus domain.OrderStatus, productStatus domain.ProductStatus) (resp dto.OrderResponse, err error) {
	if !order.OrderStatus.CanTransitionTo(orderStatus) {
		return resp, errs.ErrOrderNotActive
	}

	err = s.orderRepo.HandleTrx(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPending, orderStatus); err != nil {
			if err == errs.ErrConflict {
				return errs.ErrOrderNotActive
			}
			return err
		}

		return s.productRepo.UpdateProductStatus(ctx, order.Product, domain.ProductStatusOrdered, productStatus)
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "closeOrder").Msg("")
		return
	}

	order.OrderStatus = orderStatus

	product, err := s.productRepo.GetProductByID(ctx, order.Product)
	if err != nil {
		return
	}

	return s.buildOrderResponse(ctx, order, product)
}

func (s *OrderServiceImpl) GetProductPendingOrders(ctx context.Context, productIDHex string) (orders []repository.ProductOrderView, err error) {
	productID, err := primitive.ObjectIDFromHex(productIDHex)
	if err != nil {
		return nil, errs.ErrClient
	}

	if _, err = s.productRepo.GetProductByID(ctx, productID); err != nil {
		return
	}

	return s.orderRepo.GetProductPendingOrders(ctx, productID)
}

func (s *OrderServiceImpl) GetProductOrders(ctx context.Context, productIDHex string) (orders []repository.ProductOrderView, err error) {
	productID, err := primitive.ObjectIDFromHex(productIDHex)
	if err != nil {
		return nil, errs.ErrClient
	}

	if _, err = s.productRepo.GetProductByID(ctx, productID); err != nil {
		return
	}

	return s.orderRepo.GetProductOrders(ctx, productID)
}

func (s *OrderServiceImpl) buildOrderResponse(ctx context.Context, order domain.Order, product domain.Product) (resp dto.OrderResponse, err error) {
	buyer, err := s.userRepo.GetUserByID(ctx, order.Buyer)
	if err != nil {
		return
	}
	seller, err := s.userRepo.GetUserByID(ctx, order.Seller)
	if err != nil {
		return
	}

	resp = dto.OrderResponse{
		ID:          order.ID.Hex(),
		Price:       order.Price,
		Quantity:    order.Quantity,
		OrderStatus: string(order.OrderStatus),
		OrderDate:   order.OrderDate,
		Product: dto.OrderProductInfo{
			ID:   product.ID.Hex(),
			Name: product.Name,
		},
		Buyer: dto.OrderUserInfo{
			ID:    buyer.ID.Hex(),
			Name:  buyer.Name,
			Email: buyer.Email,
		},
		Seller: dto.OrderUserInfo{
			ID:    seller.ID.Hex(),
			Name:  seller.Name,
			Email: seller.Email,
		},
	}

	return resp, nil
}

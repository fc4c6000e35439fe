package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"github.com/azor-ahai1/SwapSpace/internal/repository"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. The status swaps take the store lock so the
// conditional-update semantics hold under concurrent callers too.

type fakeProductRepository struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]domain.Product
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: map[primitive.ObjectID]domain.Product{}}
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	data.ID = id
	r.products[id] = data
	return id, nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return product, nil
}

func (r *fakeProductRepository) GetProductDetail(ctx context.Context, id primitive.ObjectID) (repository.ProductDetailView, error) {
	product, err := r.GetProductByID(ctx, id)
	if err != nil {
		return repository.ProductDetailView{}, err
	}
	return repository.ProductDetailView{Product: product}, nil
}

func (r *fakeProductRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := []domain.Product{}
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

func (r *fakeProductRepository) GetProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := []domain.Product{}
	for _, product := range r.products {
		if product.Category == categoryID {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *fakeProductRepository) UpdateProductStatus(ctx context.Context, id primitive.ObjectID, from domain.ProductStatus, to domain.ProductStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	if product.ProductStatus != from {
		return errs.ErrConflict
	}
	product.ProductStatus = to
	r.products[id] = product
	return nil
}

type fakeOrderRepository struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]domain.Order
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: map[primitive.ObjectID]domain.Order{}}
}

func (r *fakeOrderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	data.ID = id
	r.orders[id] = data
	return id, nil
}

func (r *fakeOrderRepository) GetOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, errs.ErrNotFound
	}
	return order, nil
}

func (r *fakeOrderRepository) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, from domain.OrderStatus, to domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return errs.ErrNotFound
	}
	if order.OrderStatus != from {
		return errs.ErrConflict
	}
	order.OrderStatus = to
	r.orders[id] = order
	return nil
}

func (r *fakeOrderRepository) GetProductPendingOrders(ctx context.Context, productID primitive.ObjectID) ([]repository.ProductOrderView, error) {
	return r.productOrders(productID, true), nil
}

func (r *fakeOrderRepository) GetProductOrders(ctx context.Context, productID primitive.ObjectID) ([]repository.ProductOrderView, error) {
	return r.productOrders(productID, false), nil
}

func (r *fakeOrderRepository) productOrders(productID primitive.ObjectID, pendingOnly bool) []repository.ProductOrderView {
	r.mu.Lock()
	defer r.mu.Unlock()

	views := []repository.ProductOrderView{}
	for _, order := range r.orders {
		if order.Product != productID {
			continue
		}
		if pendingOnly && order.OrderStatus != domain.OrderStatusPending {
			continue
		}
		views = append(views, repository.ProductOrderView{
			ID:          order.ID,
			OrderStatus: order.OrderStatus,
			Price:       order.Price,
			Quantity:    order.Quantity,
			OrderDate:   order.OrderDate,
			Buyer:       order.Buyer,
			Product:     order.Product,
		})
	}
	return views
}

func (r *fakeOrderRepository) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[primitive.ObjectID]domain.User{}}
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == data.Email {
			return primitive.NilObjectID, errs.ErrEmailAlreadyUsed
		}
	}

	id := primitive.NewObjectID()
	data.ID = id
	r.users[id] = data
	return id, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, errs.ErrAccountNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) UpdateProfile(ctx context.Context, data domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[data.ID]
	if !ok {
		return errs.ErrAccountNotFound
	}
	user.Name = data.Name
	user.Email = data.Email
	user.PhoneNumber = data.PhoneNumber
	user.InstaID = data.InstaID
	user.ProfileImage = data.ProfileImage
	r.users[data.ID] = user
	return nil
}

func (r *fakeUserRepository) UpdateRefreshToken(ctx context.Context, id primitive.ObjectID, refreshToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return errs.ErrAccountNotFound
	}
	user.RefreshToken = refreshToken
	r.users[id] = user
	return nil
}

func (r *fakeUserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return errs.ErrAccountNotFound
	}
	user.HashedPassword = hashedPassword
	r.users[id] = user
	return nil
}

func (r *fakeUserRepository) GetUserOrderHistory(ctx context.Context, id primitive.ObjectID) (repository.OrderHistoryView, error) {
	return repository.OrderHistoryView{}, nil
}

func (r *fakeUserRepository) GetUserProductHistory(ctx context.Context, id primitive.ObjectID) (repository.ProductHistoryView, error) {
	return repository.ProductHistoryView{}, nil
}

func (r *fakeUserRepository) GetUserDashboard(ctx context.Context, id primitive.ObjectID) (repository.DashboardView, error) {
	return repository.DashboardView{}, nil
}

func (r *fakeUserRepository) GetUserProfile(ctx context.Context, id primitive.ObjectID) (repository.ProfileView, error) {
	return repository.ProfileView{}, nil
}

func (r *fakeUserRepository) add(user domain.User) primitive.ObjectID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	user.ID = id
	r.users[id] = user
	return id
}

type fakeCategoryRepository struct {
	mu         sync.Mutex
	categories map[primitive.ObjectID]domain.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: map[primitive.ObjectID]domain.Category{}}
}

func (r *fakeCategoryRepository) AddCategory(ctx context.Context, data domain.Category) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.categories {
		if category.Name == data.Name {
			return primitive.NilObjectID, errs.ErrConflict
		}
	}

	id := primitive.NewObjectID()
	data.ID = id
	r.categories[id] = data
	return id, nil
}

func (r *fakeCategoryRepository) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return domain.Category{}, nil
}

func (r *fakeCategoryRepository) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return domain.Category{}, errs.ErrNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepository) GetCategoriesWithProductCount(ctx context.Context) ([]repository.CategoryCountView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	views := []repository.CategoryCountView{}
	for _, category := range r.categories {
		views = append(views, repository.CategoryCountView{ID: category.ID, Name: category.Name})
	}
	return views, nil
}

type fakeOTPRepository struct {
	mu   sync.Mutex
	otps map[string]domain.OTP
}

func newFakeOTPRepository() *fakeOTPRepository {
	return &fakeOTPRepository{otps: map[string]domain.OTP{}}
}

func (r *fakeOTPRepository) UpsertOTP(ctx context.Context, data domain.OTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.otps[data.Email] = data
	return nil
}

func (r *fakeOTPRepository) GetOTPByEmail(ctx context.Context, email string) (domain.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	otp, ok := r.otps[email]
	if !ok {
		return domain.OTP{}, errs.ErrInvalidOTP
	}
	return otp, nil
}

func (r *fakeOTPRepository) DeleteOTPByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.otps, email)
	return nil
}

type fakeMessageRepository struct {
	mu       sync.Mutex
	messages map[primitive.ObjectID]domain.Message
}

func newFakeMessageRepository() *fakeMessageRepository {
	return &fakeMessageRepository{messages: map[primitive.ObjectID]domain.Message{}}
}

func (r *fakeMessageRepository) AddMessage(ctx context.Context, data domain.Message) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	data.ID = id
	r.messages[id] = data
	return id, nil
}

func (r *fakeMessageRepository) GetMessageByID(ctx context.Context, id primitive.ObjectID) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message, ok := r.messages[id]
	if !ok {
		return domain.Message{}, errs.ErrNotFound
	}
	return message, nil
}

func (r *fakeMessageRepository) GetConversation(ctx context.Context, first primitive.ObjectID, second primitive.ObjectID) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages := []domain.Message{}
	for _, message := range r.messages {
		if (message.Sender == first && message.Receiver == second) ||
			(message.Sender == second && message.Receiver == first) {
			messages = append(messages, message)
		}
	}
	return messages, nil
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
}

func (u *fakeUploader) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.uploads = append(u.uploads, folder)
	return fmt.Sprintf("https://images.example.com/%s/%d", folder, len(u.uploads)), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent map[string]string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: map[string]string{}}
}

func (m *fakeMailer) SendOTPEmail(to string, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent[to] = code
	return nil
}

package controller

import (
	"github.com/azor-ahai1/SwapSpace/internal/dto"
	"github.com/azor-ahai1/SwapSpace/internal/middleware"
	"github.com/azor-ahai1/SwapSpace/internal/service"
	"github.com/azor-ahai1/SwapSpace/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	productService service.ProductService
}

func CreateProductController(e *echo.Group, productService service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		productService: productService,
	}
	e.POST("/products/add-product", c.AddProduct, isLoggedIn)
	e.GET("/products/get-product/:productId", c.GetProduct)
	e.GET("/products/get-all-products", c.GetProducts)
	e.GET("/products/get-products-by-category/:categoryId", c.GetProductsByCategory)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	images, err := formFileReaders(e, "images", maxProductImages)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	resp, err := c.productService.AddProduct(e.Request().Context(), middleware.UserID(e), payload, images)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteCreatedResponse(e, "Product created Successfully", resp)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	resp, err := c.productService.GetProductByID(e.Request().Context(), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Product retrieved successfully", resp)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	resp, err := c.productService.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Products retrieved successfully", resp)
}

func (c *ProductController) GetProductsByCategory(e echo.Context) error {
	resp, err := c.productService.GetProductsByCategory(e.Request().Context(), e.Param("categoryId"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Products retrieved successfully", resp)
}

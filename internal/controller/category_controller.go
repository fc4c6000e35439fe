package controller

import (
	"github.com/azor-ahai1/SwapSpace/internal/service"
	"github.com/azor-ahai1/SwapSpace/pkg/response"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func CreateCategoryController(e *echo.Group, categoryService service.CategoryService) {
	c := CategoryController{
		categoryService: categoryService,
	}
	e.POST("/categories/get-all-categories", c.GetCategories)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	resp, err := c.categoryService.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Categories retrieved successfully", resp)
}

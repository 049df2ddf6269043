package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type ProjectHandler struct {
	useCase *projectUC.ProjectUseCase
}

func NewProjectHandler(uc *projectUC.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{useCase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("read project body", err))
		return
	}
	p, err := h.useCase.Create(c.Request.Context(), body)
	if err != nil {
		c.Error(err).SetMeta(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.useCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.useCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("read project body", err))
		return
	}
	p, err := h.useCase.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		c.Error(err).SetMeta(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/importer"
	"github.com/njprem/BizSuite_BackEnd/internal/service"
	"github.com/njprem/BizSuite_BackEnd/internal/util"
)

type ImportHandler struct {
	service       *service.ImportService
	maxUploadSize int64
}

func RegisterImports(e *echo.Echo, auth *service.AuthService, svc *service.ImportService, enabled bool) {
	if !enabled || svc == nil {
		return
	}
	handler := &ImportHandler{
		service:       svc,
		maxUploadSize: svc.MaxFileBytes(),
	}

	group := e.Group("/api/v1/admin/imports", RequireAuth(auth), RequireRole(domain.ImportRoles...))
	group.GET("/types", handler.types)
	group.GET("/:type/template", handler.template)
	group.POST("", handler.create)
}

// ImportFieldResponse describes one accepted column.
type ImportFieldResponse struct {
	Name     string   `json:"name" example:"email"`
	Aliases  []string `json:"aliases,omitempty"`
	Kind     string   `json:"kind" example:"email"`
	Required bool     `json:"required"`
	Default  string   `json:"default,omitempty"`
	Values   []string `json:"values,omitempty"`
}

type ImportTypeResponse struct {
	Type      string                `json:"type" example:"clients"`
	Label     string                `json:"label" example:"client"`
	Fields    []ImportFieldResponse `json:"fields"`
	UniqueKey []string              `json:"unique_key"`
}

func (h *ImportHandler) types(c echo.Context) error {
	schemas := h.service.Schemas()
	out := make([]ImportTypeResponse, 0, len(schemas))
	for _, s := range schemas {
		fields := make([]ImportFieldResponse, 0, len(s.Fields))
		for _, f := range s.Fields {
			fields = append(fields, ImportFieldResponse{
				Name:     f.Name,
				Aliases:  f.Aliases,
				Kind:     string(f.Kind),
				Required: f.Required,
				Default:  f.Default,
				Values:   f.EnumValues,
			})
		}
		out = append(out, ImportTypeResponse{
			Type:      s.Type.String(),
			Label:     s.Label,
			Fields:    fields,
			UniqueKey: s.UniqueKey,
		})
	}
	return c.JSON(http.StatusOK, util.Data("types", out))
}

func (h *ImportHandler) template(c echo.Context) error {
	body, err := h.service.Template(c.Param("type"))
	if err != nil {
		return h.writeError(c, err)
	}
	filename := fmt.Sprintf("%s-import-template.csv", domain.ParseEntityType(c.Param("type")))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, "text/csv", body)
}

func (h *ImportHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	req := service.ImportRequest{Type: firstNonEmpty(c.FormValue("type"), c.QueryParam("type"))}

	if raw := strings.TrimSpace(firstNonEmpty(c.FormValue("tenant_id"), c.QueryParam("tenant_id"))); raw != "" {
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("invalid tenant_id"))
		}
		req.TenantID = tenantID
	}
	if raw := c.FormValue("delimiter"); raw != "" {
		delimiter, err := importer.ParseDelimiter(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		req.Delimiter = delimiter
	}

	file, err := c.FormFile("file")
	if err != nil {
		return h.writeError(c, service.ErrImportNoFile)
	}
	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unable to read upload"))
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxUploadSize+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("failed reading upload"))
	}
	if int64(len(data)) > h.maxUploadSize {
		return h.writeError(c, service.ErrImportTooLarge)
	}
	req.Filename = file.Filename
	req.Contents = data

	result, err := h.service.Import(c.Request().Context(), user, req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ImportHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrImportUnauthenticated):
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	case errors.Is(err, service.ErrImportForbidden):
		return c.JSON(http.StatusForbidden, util.Error(err.Error()))
	case errors.Is(err, service.ErrImportUnknownType),
		errors.Is(err, service.ErrImportNoFile),
		errors.Is(err, service.ErrImportEmptyFile),
		errors.Is(err, service.ErrImportMissingTenant),
		errors.Is(err, service.ErrImportMalformed):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, service.ErrImportTooLarge), errors.Is(err, service.ErrImportRowLimitExceeded):
		return c.JSON(http.StatusRequestEntityTooLarge, util.Error(err.Error()))
	case errors.Is(err, service.ErrImportAborted):
		return c.JSON(http.StatusInternalServerError, util.ErrorWithDetails("import aborted", err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, util.ErrorWithDetails("internal error", err.Error()))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

package http

import (
	"errors"
	"net/http"
	"time"

	declDomain "declatogo-backend/internal/domain/declaration"
	declUsecase "declatogo-backend/internal/usecase/declaration"

	"github.com/labstack/echo/v4"
)

type DeclarationHandler struct{ uc *declUsecase.Usecase }

func NewDeclarationHandler(uc *declUsecase.Usecase) *DeclarationHandler {
	return &DeclarationHandler{uc: uc}
}

type createDeclarationReq struct {
	Type         string `json:"type" validate:"required,decltype"`
	CategoryCode string `json:"category_code" validate:"required,max=50"`

	PieceNumber string     `json:"piece_number" validate:"max=100"`
	NameOnPiece string     `json:"name_on_piece" validate:"max=200"`
	LastName    string     `json:"last_name" validate:"max=100"`
	FirstName   string     `json:"first_name" validate:"max=100"`
	BirthDate   *time.Time `json:"birth_date"`
	BirthPlace  string     `json:"birth_place" validate:"max=200"`
	Profession  string     `json:"profession" validate:"max=100"`

	Description string     `json:"description"`
	Location    string     `json:"location" validate:"max=300"`
	OccurredOn  *time.Time `json:"occurred_on"`
	PhotoURL    string     `json:"photo_url"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
}

func (h *DeclarationHandler) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	var req createDeclarationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), declUsecase.CreateInput{
		OwnerID:      owner,
		Type:         req.Type,
		CategoryCode: req.CategoryCode,
		PieceNumber:  req.PieceNumber,
		NameOnPiece:  req.NameOnPiece,
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		BirthDate:    req.BirthDate,
		BirthPlace:   req.BirthPlace,
		Profession:   req.Profession,
		Description:  req.Description,
		Location:     req.Location,
		OccurredOn:   req.OccurredOn,
		PhotoURL:     req.PhotoURL,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DeclarationHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("declaration_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DeclarationHandler) List(c echo.Context) error {
	f := declDomain.ListFilter{
		Type:   declDomain.Type(c.QueryParam("type")),
		Status: declDomain.Status(c.QueryParam("status")),
	}
	rows, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "list failed"})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DeclarationHandler) Mine(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	rows, err := h.uc.ListMine(c.Request().Context(), owner)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "list failed"})
	}
	return c.JSON(http.StatusOK, rows)
}

type searchReq struct {
	PieceNumber  string `json:"piece_number"`
	NameOnPiece  string `json:"name_on_piece"`
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
	CategoryCode string `json:"category_code"`
}

func (h *DeclarationHandler) Search(c echo.Context) error {
	var req searchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	rows, err := h.uc.Search(c.Request().Context(), declUsecase.SearchInput(req))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"result_count": len(rows),
		"matches":      rows,
	})
}

type changeStatusReq struct {
	Status  string `json:"status" validate:"required"`
	Remarks string `json:"remarks"`
}

func (h *DeclarationHandler) ChangeStatus(c echo.Context) error {
	actor, err := ownerID(c)
	if err != nil {
		return err
	}
	var req changeStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.ChangeStatus(c.Request().Context(), declUsecase.ChangeStatusInput{
		DeclarationID: c.Param("declaration_id"),
		NewStatus:     req.Status,
		Remarks:       req.Remarks,
		ActorID:       actor,
	})
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, dto)
	case errors.Is(err, declDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, declDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "status change failed"})
	}
}

func (h *DeclarationHandler) Delete(c echo.Context) error {
	actor, err := ownerID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("declaration_id"), actor); err != nil {
		if errors.Is(err, declDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "delete failed"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "declaration deleted"})
}

func (h *DeclarationHandler) Stats(c echo.Context) error {
	s, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "stats failed"})
	}
	return c.JSON(http.StatusOK, s)
}

package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/dto"
	"github.com/zamretail/smartinvoice/internal/application/fiscal"
	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// ImportHandler exposes customs import declarations: listing and the local
// approve/reject decision with item mappings.
type ImportHandler struct {
	svc *fiscal.Service
}

func NewImportHandler(svc *fiscal.Service) *ImportHandler {
	return &ImportHandler{svc: svc}
}

func (h *ImportHandler) List(c *fiber.Ctx) error {
	refresh := c.QueryBool("refresh")
	items, err := h.svc.FetchImports(c.Context(), refresh)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *ImportHandler) Approve(c *fiber.Ctx) error {
	decl, in, err := h.declarationAndBody(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.svc.ApproveImports(c.Context(), decl, in.ItemMappings, in.Remark, actingUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ImportHandler) Reject(c *fiber.Ctx) error {
	decl, in, err := h.declarationAndBody(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.svc.RejectImports(c.Context(), decl, in.Remark, actingUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// declarationAndBody resolves the :taskCd parameter against the fetched list
// and parses the decision body.
func (h *ImportHandler) declarationAndBody(c *fiber.Ctx) ([]entity.ImportItem, dto.ImportDecisionRequest, error) {
	var in dto.ImportDecisionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return nil, in, fmt.Errorf("%w: invalid body", domain.ErrInvalidInput)
		}
	}

	taskCd := c.Params("taskCd")
	all, err := h.svc.FetchImports(c.Context(), false)
	if err != nil {
		return nil, in, err
	}

	var decl []entity.ImportItem
	for _, item := range all {
		if item.TaskCode == taskCd {
			decl = append(decl, item)
		}
	}
	if len(decl) == 0 {
		return nil, in, fmt.Errorf("import declaration %s: %w", taskCd, domain.ErrNotFound)
	}
	return decl, in, nil
}

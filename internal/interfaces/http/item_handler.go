package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/dto"
	"github.com/zamretail/smartinvoice/internal/application/fiscal"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// ItemHandler exposes the item master: registration, updates and bill of
// materials declaration.
type ItemHandler struct {
	svc *fiscal.Service
}

func NewItemHandler(svc *fiscal.Service) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" || in.ClassificationCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name and classification_code are required"})
	}

	item := itemFromRequest(in)
	if err := h.svc.RegisterItem(c.Context(), item, actingUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(itemResponse(item))
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}

	item := itemFromRequest(in)
	item.ID = c.Params("id")
	if err := h.svc.UpdateItem(c.Context(), item, actingUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(itemResponse(item))
}

// SetQuantity applies a manual on-hand correction and declares the new
// residual to the gateway.
func (h *ItemHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.svc.SetItemQuantity(c.Context(), c.Params("id"), in.Quantity, actingUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SyncComposition pushes the item's bill of materials to the gateway.
func (h *ItemHandler) SyncComposition(c *fiber.Ctx) error {
	if err := h.svc.SyncItemComposition(c.Context(), c.Params("id"), actingUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func itemFromRequest(in dto.ItemRequest) *entity.Item {
	return &entity.Item{
		Name:                in.Name,
		ItemCode:            in.ItemCode,
		ClassificationCode:  in.ClassificationCode,
		ClassificationLevel: in.ClassificationLevel,
		TaxTypeCode:         in.TaxTypeCode,
		ItemType:            in.ItemType,
		PackagingUnitCode:   in.PackagingUnitCode,
		QuantityUnitCode:    in.QuantityUnitCode,
		OriginCountryCode:   in.OriginCountryCode,
		Barcode:             in.Barcode,
		ListPrice:           in.ListPrice,
		TaxCategory:         in.TaxCategory,
		UseYn:               in.UseYn,
	}
}

func itemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:                 it.ID,
		Name:               it.Name,
		ItemCode:           it.ItemCode,
		ClassificationCode: it.ClassificationCode,
		ItemType:           it.ItemType,
		PackagingUnitCode:  it.PackagingUnitCode,
		QuantityUnitCode:   it.QuantityUnitCode,
		OriginCountryCode:  it.OriginCountryCode,
		Barcode:            it.Barcode,
		ListPrice:          it.ListPrice,
		TaxCategory:        it.TaxCategory,
		UseYn:              it.UseYn,
	}
}

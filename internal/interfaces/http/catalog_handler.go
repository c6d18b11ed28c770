package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/dto"
	"github.com/zamretail/smartinvoice/internal/application/fiscal"
)

// CatalogHandler exposes the authority's reference catalogues: an explicit
// sync pulls them from the gateway, the list endpoints serve the stored copy.
type CatalogHandler struct {
	svc *fiscal.Service
}

func NewCatalogHandler(svc *fiscal.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) Sync(c *fiber.Ctx) error {
	classifications, codes, err := h.svc.SyncCatalogs(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CatalogSyncResponse{Classifications: classifications, CommonCodes: codes})
}

func (h *CatalogHandler) Classifications(c *fiber.Ctx) error {
	list, err := h.svc.ListClassifications(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	out := make([]dto.ClassificationResponse, 0, len(list))
	for _, cl := range list {
		out = append(out, dto.ClassificationResponse{
			Code:        cl.Code,
			Name:        cl.Name,
			Level:       cl.Level,
			TaxTypeCode: cl.TaxTypeCode,
			MajorTarget: cl.MajorTarget,
		})
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CommonCodes(c *fiber.Ctx) error {
	list, err := h.svc.ListCommonCodes(c.Context(), c.Query("class"))
	if err != nil {
		return writeError(c, err)
	}

	out := make([]dto.CommonCodeResponse, 0, len(list))
	for _, cc := range list {
		out = append(out, dto.CommonCodeResponse{
			ClassCode: cc.ClassCode,
			ClassName: cc.ClassName,
			Code:      cc.Code,
			Name:      cc.Name,
		})
	}
	return c.JSON(out)
}

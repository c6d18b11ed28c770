package fiscal

import (
	"context"
	"fmt"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

// FetchImports lists customs declaration lines awaiting a local decision.
// Results are cached per watermark; refresh forces a new pull.
func (s *Service) FetchImports(ctx context.Context, refresh bool) ([]entity.ImportItem, error) {
	list, err := s.fetchImportList(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("fetch imports: %w", err)
	}

	items := make([]entity.ImportItem, 0, len(list.ItemList))
	for _, e := range list.ItemList {
		items = append(items, entity.ImportItem{
			TaskCode:            e.TaskCd,
			DeclarationNo:       e.DclNo,
			ItemSequence:        e.ItemSeq,
			DeclarationDate:     e.DclDe,
			HSCode:              e.HsCd,
			ItemName:            e.ItemNm,
			OriginCountryCode:   e.OrgnNatCd,
			ExportCountryCode:   e.ExptNatCd,
			PackagingUnitCode:   e.PkgUnitCd,
			Packaging:           e.Pkg,
			QuantityUnitCode:    e.QtyUnitCd,
			Quantity:            e.Qty,
			GrossWeight:         e.TotWt,
			NetWeight:           e.NetWt,
			SupplierName:        e.SpplrNm,
			AgentName:           e.AgntNm,
			InvoiceForeignAmt:   e.InvcFcurAmt,
			InvoiceForeignCurr:  e.InvcFcurCd,
			InvoiceExchangeRate: e.InvcFcurExcrt,
		})
	}
	return items, nil
}

// ApproveImports accepts a declaration's lines, each mapped to a local item.
// itemIDs keys on the declaration line sequence; every line needs a mapping
// so the gateway receives the item and classification codes it will register
// the import under. After the decision is recorded the cleared goods are
// booked in: movement report, residual declaration, then the ledger
// increment.
func (s *Service) ApproveImports(ctx context.Context, decl []entity.ImportItem, itemIDs map[int]string, remark string, user entity.User) error {
	if len(decl) == 0 {
		return fmt.Errorf("%w: no declaration lines to approve", domain.ErrInvalidInput)
	}

	itemCodes := make(map[int]string, len(decl))
	classCodes := make(map[int]string, len(decl))
	lines := make([]gateway.ImportStockLine, 0, len(decl))
	for _, d := range decl {
		id, ok := itemIDs[d.ItemSequence]
		if !ok {
			return fmt.Errorf("%w: declaration line %d has no mapped item", domain.ErrInvalidInput, d.ItemSequence)
		}
		item, err := s.items.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("resolve mapped item for line %d: %w", d.ItemSequence, err)
		}
		itemCodes[d.ItemSequence] = item.ItemCode
		classCodes[d.ItemSequence] = item.ClassificationCode
		lines = append(lines, gateway.ImportStockLine{Entry: d, Item: item})
	}

	if err := s.decideImports(ctx, decl, itemCodes, classCodes, zra.ImportStatusApproved, remark, user); err != nil {
		return err
	}

	now := s.now().In(s.loc)
	stockIn := gateway.BuildImportStockItems(lines, s.company, user, now)
	if err := stockCallResult(s.gw.SubmitStockItems(ctx, stockIn)); err != nil {
		if s.strictStock {
			return fmt.Errorf("report import stock-in: %w", err)
		}
		s.log.Error().Err(err).Str("taskCd", decl[0].TaskCode).Msg("import stock-in submission failed, continuing")
	}

	balances := make([]gateway.StockBalance, 0, len(lines))
	for _, l := range lines {
		onHand, err := s.stock.OnHand(ctx, l.Item.ID)
		if err != nil {
			return fmt.Errorf("read on-hand for %s: %w", l.Item.ItemCode, err)
		}
		balances = append(balances, gateway.StockBalance{
			ItemCd: l.Item.ItemCode,
			RsdQty: gateway.ResidualQuantity(onHand, l.Entry.Quantity, true),
		})
	}

	master := gateway.BuildStockMaster(s.company, user, balances)
	if err := stockCallResult(s.gw.SubmitStockMaster(ctx, master)); err != nil {
		if s.strictStock {
			return fmt.Errorf("report import residuals: %w", err)
		}
		s.log.Error().Err(err).Str("taskCd", decl[0].TaskCode).Msg("import stock master submission failed, continuing")
	}

	for _, l := range lines {
		if _, err := s.stock.ApplyDelta(ctx, l.Item.ID, l.Entry.Quantity); err != nil {
			return fmt.Errorf("apply stock delta for %s: %w", l.Item.ItemCode, err)
		}
	}
	return nil
}

// RejectImports refuses a declaration's lines. No item mapping is needed.
func (s *Service) RejectImports(ctx context.Context, decl []entity.ImportItem, remark string, user entity.User) error {
	if len(decl) == 0 {
		return fmt.Errorf("%w: no declaration lines to reject", domain.ErrInvalidInput)
	}
	return s.decideImports(ctx, decl, nil, nil, zra.ImportStatusRejected, remark, user)
}

func (s *Service) decideImports(ctx context.Context, decl []entity.ImportItem, itemCodes, classCodes map[int]string, statusCd, remark string, user entity.User) error {
	payload := gateway.BuildImportUpdate(decl, itemCodes, classCodes, statusCd, remark, s.company, user)
	if _, err := s.gw.UpdateImportItems(ctx, payload); err != nil {
		return fmt.Errorf("update import items %s: %w", decl[0].TaskCode, err)
	}

	s.cache.invalidate()
	s.log.Info().
		Str("taskCd", decl[0].TaskCode).
		Str("imptItemSttsCd", statusCd).
		Int("lines", len(decl)).
		Msg("import decision recorded")
	return nil
}

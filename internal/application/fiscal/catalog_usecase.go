package fiscal

import (
	"context"
	"fmt"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// SyncCatalogs pulls the item classification and common code catalogues from
// the gateway and replaces the stored copies. Items reference these codes, so
// the sync runs before products are configured. Returns the stored counts.
func (s *Service) SyncCatalogs(ctx context.Context) (int, int, error) {
	clsData, err := s.gw.FetchClassifications(ctx, s.fetchRequest())
	if err != nil {
		return 0, 0, fmt.Errorf("fetch classifications: %w", err)
	}

	classifications := make([]entity.ItemClassification, 0, len(clsData.ItemClsList))
	for _, e := range clsData.ItemClsList {
		// Retired entries stay on the gateway side; only active codes are
		// offered to products.
		if e.UseYn != "Y" {
			continue
		}
		classifications = append(classifications, entity.ItemClassification{
			Code:        e.ItemClsCd,
			Name:        e.ItemClsNm,
			Level:       e.ItemClsLvl,
			TaxTypeCode: e.TaxTyCd,
			MajorTarget: e.MjrTgYn == "Y",
		})
	}
	if err := s.catalogs.ReplaceClassifications(ctx, classifications); err != nil {
		return 0, 0, fmt.Errorf("store classifications: %w", err)
	}

	codeData, err := s.gw.FetchCommonCodes(ctx, s.fetchRequest())
	if err != nil {
		return 0, 0, fmt.Errorf("fetch common codes: %w", err)
	}

	var codes []entity.CommonCode
	for _, cls := range codeData.ClsList {
		for _, d := range cls.DtlList {
			codes = append(codes, entity.CommonCode{
				ClassCode: cls.CdCls,
				ClassName: cls.CdClsNm,
				Code:      d.Cd,
				Name:      d.CdNm,
			})
		}
	}
	if err := s.catalogs.ReplaceCommonCodes(ctx, codes); err != nil {
		return 0, 0, fmt.Errorf("store common codes: %w", err)
	}

	s.log.Info().
		Int("classifications", len(classifications)).
		Int("commonCodes", len(codes)).
		Msg("catalogues synced")
	return len(classifications), len(codes), nil
}

// ListClassifications returns the stored classification catalogue.
func (s *Service) ListClassifications(ctx context.Context) ([]entity.ItemClassification, error) {
	return s.catalogs.ListClassifications(ctx)
}

// ListCommonCodes returns stored common codes, one class when classCode is
// non-empty: 10 quantity units, 17 packaging units, 05 countries.
func (s *Service) ListCommonCodes(ctx context.Context, classCode string) ([]entity.CommonCode, error) {
	return s.catalogs.ListCommonCodes(ctx, classCode)
}

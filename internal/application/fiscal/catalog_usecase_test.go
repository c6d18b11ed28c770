package fiscal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
)

func TestSyncCatalogs(t *testing.T) {
	env := newTestEnv()
	env.gw.classifications = &gateway.ClassificationList{ItemClsList: []gateway.ItemClassEntry{
		{ItemClsCd: "50102517", ItemClsNm: "Flours or meals or flakes", ItemClsLvl: 4, TaxTyCd: "B", MjrTgYn: "Y", UseYn: "Y"},
		{ItemClsCd: "50101717", ItemClsNm: "Retired segment", UseYn: "N"},
	}}
	env.gw.commonCodes = &gateway.CodeList{ClsList: []gateway.CodeClass{
		{CdCls: "10", CdClsNm: "Quantity Unit", DtlList: []gateway.CodeDetail{
			{Cd: "BA", CdNm: "Barrel"},
			{Cd: "U", CdNm: "Pieces/item"},
		}},
		{CdCls: "05", CdClsNm: "Country", DtlList: []gateway.CodeDetail{
			{Cd: "ZM", CdNm: "Zambia"},
		}},
	}}

	classifications, codes, err := env.svc.SyncCatalogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, classifications, "retired entries are dropped")
	assert.Equal(t, 3, codes)

	require.Len(t, env.catalogs.classifications, 1)
	stored := env.catalogs.classifications[0]
	assert.Equal(t, "50102517", stored.Code)
	assert.Equal(t, "B", stored.TaxTypeCode)
	assert.Equal(t, 4, stored.Level)
	assert.True(t, stored.MajorTarget)

	units, err := env.svc.ListCommonCodes(context.Background(), "10")
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "Barrel", units[0].Name)

	all, err := env.svc.ListCommonCodes(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSyncCatalogs_GatewayFailureStoresNothing(t *testing.T) {
	env := newTestEnv()
	env.gw.classificationsErr = errors.New("gateway status 500")

	_, _, err := env.svc.SyncCatalogs(context.Background())
	require.Error(t, err)
	assert.Empty(t, env.catalogs.classifications)
	assert.Empty(t, env.catalogs.codes)
}

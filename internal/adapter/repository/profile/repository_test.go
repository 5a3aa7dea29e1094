package profile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

func TestBuiltinProfiles(t *testing.T) {
	repo := NewBuiltinRepository()
	profiles := repo.List()
	require.Len(t, profiles, 27)

	handlers := usecase.NewAdapterRegistry()
	for _, p := range profiles {
		require.NoError(t, p.Validate(), p.Name())
		if p.IsSpecial() {
			_, err := handlers.Resolve(p, usecase.DefaultOptions())
			assert.NoError(t, err, "%s uses handler %s", p.Name(), p.Handler())
		} else {
			assert.NotEmpty(t, p.ColumnMap(), p.Name())
		}
	}
}

func TestBuiltinProfileSettings(t *testing.T) {
	repo := NewBuiltinRepository()

	cmb, err := repo.FindByName("招商银行")
	require.NoError(t, err)
	assert.True(t, cmb.AmountsSigned())
	assert.True(t, cmb.HolderFromDir())

	abc, err := repo.FindByName("农业银行")
	require.NoError(t, err)
	assert.Equal(t, "贷方交易金额", abc.SecondAmountColumn())
	assert.Equal(t, 1, abc.FooterRows())

	bob, err := repo.FindByName("北京银行")
	require.NoError(t, err)
	assert.Equal(t, domain.SheetNameHolder, bob.SheetName())
	assert.NotContains(t, bob.NeedColumns(), domain.ColCode)

	bohai, err := repo.FindByName("渤海银行")
	require.NoError(t, err)
	assert.Equal(t, []string{"报告可疑交易逐笔明细表—"}, bohai.Decorations())
	assert.Equal(t, domain.ColAmount, bohai.ColumnMap()[" 交易额(按原币计)"])
}

func TestFindByNameUnsupported(t *testing.T) {
	_, err := NewBuiltinRepository().FindByName("火星银行")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedInstitution))
}

func TestLoadOverrides(t *testing.T) {
	repo := NewBuiltinRepository()
	err := repo.Load(strings.NewReader(`
profiles:
  - name: 北京银行
    footer_rows: 2
    column_map:
      发生金额: 交易金额
  - name: 测试银行
    column_map:
      日期: 交易日期
      金额: 交易金额
    amounts_signed: true
    decorations: ["流水"]
  - name: 测试农商
    base: 天津银行
    empty_sheets: false
`))
	require.NoError(t, err)

	bob, err := repo.FindByName("北京银行")
	require.NoError(t, err)
	assert.Equal(t, 2, bob.FooterRows())
	assert.Equal(t, domain.ColAmount, bob.ColumnMap()["发生金额"])
	assert.Equal(t, domain.ColAccount, bob.ColumnMap()["帐号"])
	assert.Equal(t, domain.SheetNameHolder, bob.SheetName())

	test, err := repo.FindByName("测试银行")
	require.NoError(t, err)
	assert.True(t, test.AmountsSigned())
	assert.True(t, test.HolderFromName())
	assert.Equal(t, domain.CheckColumnsDefault, test.CheckColumns())

	derived, err := repo.FindByName("测试农商")
	require.NoError(t, err)
	assert.False(t, derived.TolerateEmptySheets())
	assert.Equal(t, domain.CheckColumnsCommon, derived.CheckColumns())

	tianjin, err := repo.FindByName("天津银行")
	require.NoError(t, err)
	assert.True(t, tianjin.TolerateEmptySheets())
}

func TestLoadRejectsInvalidOverrides(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"column map on handler profile", "profiles:\n  - name: 中国银行\n    column_map: {日期: 交易日期}\n"},
		{"unknown base", "profiles:\n  - name: 新银行\n    base: 不存在\n"},
		{"unknown sheet name kind", "profiles:\n  - name: 新银行\n    sheet_name: 卡号\n"},
		{"unknown field", "profiles:\n  - name: 新银行\n    colmap: {}\n"},
		{"negative footer", "profiles:\n  - name: 新银行\n    footer_rows: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewBuiltinRepository()
			err := repo.Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidProfile), "got %v", err)
			_, err = repo.FindByName("新银行")
			assert.True(t, errors.Is(err, domain.ErrUnsupportedInstitution))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - name: 文件银行\n    column_map: {日期: 交易日期}\n"), 0o600))

	repo := NewRepository()
	require.NoError(t, repo.LoadFile(path))
	_, err := repo.FindByName("文件银行")
	assert.NoError(t, err)

	assert.Error(t, repo.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

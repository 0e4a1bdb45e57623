package infra

import (
	"os"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncarPreservaAcentos(t *testing.T) {
	// A byte-based cut would land inside one of the multi-byte characters.
	longa := "Manutenção de informação"
	curta := truncar(longa, 22)

	assert.True(t, utf8.ValidString(curta))
	assert.Equal(t, 22, len([]rune(curta)))
	assert.Equal(t, "Manutenção de informa…", curta)

	assert.Equal(t, "Troca de óleo", truncar("Troca de óleo", 22))
}

func TestGerarReciboPDFComDescricaoAcentuada(t *testing.T) {
	tr := &model.Transacao{
		ID:    3,
		Data:  time.Date(2026, 5, 10, 14, 30, 0, 0, time.UTC),
		Tipo:  model.TipoVenda,
		Total: decimal.NewFromInt(80),
		Itens: []model.TransacaoItem{
			{
				Descricao:     "Revisão completa da suspensão dianteira",
				Quantidade:    1,
				PrecoUnitario: decimal.NewFromInt(80),
				Subtotal:      decimal.NewFromInt(80),
			},
		},
		Pagamentos: []model.Pagamento{
			{
				Valor:           decimal.NewFromInt(80),
				MetodoPagamento: &model.MetodoPagamento{Nome: "Dinheiro", Codigo: "dinheiro"},
			},
		},
	}

	path, err := GerarReciboPDF(tr, "Oficina Teste", t.TempDir(), time.UTC)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

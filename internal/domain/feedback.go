package domain

import "time"

// Níveis de satisfação aceitos pelo totem. Qualquer outro valor é rejeitado
// na camada de serviço, antes de chegar ao banco.
const (
	LevelMuitoSatisfeito = "Muito Satisfeito"
	LevelSatisfeito      = "Satisfeito"
	LevelInsatisfeito    = "Insatisfeito"
)

// SatisfactionLevels lista os níveis na ordem em que aparecem no totem.
var SatisfactionLevels = []string{
	LevelMuitoSatisfeito,
	LevelSatisfeito,
	LevelInsatisfeito,
}

// IsValidSatisfactionLevel verifica se o valor pertence à enumeração fixa.
func IsValidSatisfactionLevel(level string) bool {
	for _, l := range SatisfactionLevels {
		if level == l {
			return true
		}
	}
	return false
}

// FeedbackEvent é o único registro persistido pelo sistema. O banco atribui
// ID e CreatedAt na inserção; o registro nunca é atualizado ou removido.
type FeedbackEvent struct {
	ID                int       `json:"id"`
	SatisfactionLevel string    `json:"satisfaction_level"`
	CreatedAt         time.Time `json:"created_at"`
}

// FeedbackFilters restringe listagens e exportações. Date é opcional e
// compara apenas a data de calendário (convenção UTC).
type FeedbackFilters struct {
	Date  *time.Time
	Limit int
}

// LevelCount é o resultado bruto do agrupamento por nível no banco.
type LevelCount struct {
	Level string
	Count int
}

// LevelStats é uma entrada do resumo exposto em /api/admin/stats.
// Percentage é uma string com uma casa decimal (ex.: "25.0").
type LevelStats struct {
	Level      string `json:"level"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

// StatsSummary agrega os contadores por nível. Níveis sem ocorrências na
// janela filtrada não aparecem em Stats.
type StatsSummary struct {
	Total int          `json:"total"`
	Stats []LevelStats `json:"stats"`
}

// ExportFile é o arquivo gerado pelo serviço de exportação.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

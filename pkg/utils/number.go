package utils

import "fmt"

// FormatPercent formata count/total*100 com uma casa decimal. Quando total é
// zero retorna o literal "0.0" para evitar divisão por zero.
func FormatPercent(count, total int) string {
	if total == 0 {
		return "0.0"
	}

	return fmt.Sprintf("%.1f", float64(count)/float64(total)*100)
}

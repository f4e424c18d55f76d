package role

import (
	"strconv"
	"strings"
)

// lookupKey identifies a catalog entry by the tuple the assignment export
// can reproduce: class, standard, level and description. Absent fields
// render as a fixed marker so (nil) and ("") never collide by accident.
func lookupKey(classe *string, padrao, nivel *int64, descricao string) string {
	return strings.Join([]string{
		strPart(classe),
		intPart(padrao),
		intPart(nivel),
		descricao,
	}, "|")
}

// dedupKey is the full seven-field logical key used to drop duplicate
// catalog rows within one import batch.
func dedupKey(c CargoFuncao) string {
	return strings.Join([]string{
		strPart(c.ClasseCargo),
		intPart(c.ReferenciaCargo),
		intPart(c.PadraoCargo),
		intPart(c.NivelCargo),
		strPart(c.Funcao),
		c.DescricaoCargo,
		intPart(c.NivelFuncao),
	}, "|")
}

func strPart(s *string) string {
	if s == nil {
		return "\x00"
	}
	return *s
}

func intPart(n *int64) string {
	if n == nil {
		return "\x00"
	}
	return strconv.FormatInt(*n, 10)
}

package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercases", raw: "Иванов Иван", want: "иванов иван"},
		{name: "replaces yo", raw: "Семёнов", want: "семенов"},
		{name: "uppercase yo", raw: "ЁЖИКОВ", want: "ежиков"},
		{name: "strips commas", raw: "Петров,", want: "петров"},
		{name: "drops parenthetical notes", raw: "Сидоров (капитан) Пётр", want: "сидоров петр"},
		{name: "dots and asterisks become spaces", raw: "А.Б.Кузнецов*", want: "а б кузнецов"},
		{name: "collapses whitespace", raw: "  Кубок \t  А  ", want: "кубок а"},
		{name: "empty stays empty", raw: "   ", want: ""},
		{name: "latin names", raw: "John  SMITH (guest)", want: "john smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("Ёлкин (Москва), А.*")
	assert.Equal(t, once, Normalize(once))
}

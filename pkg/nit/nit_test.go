package nit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credifarma/cupos-api/pkg/nit"
)

func TestDigitoVerificacion(t *testing.T) {
	cases := []struct {
		nit    string
		quiere byte
	}{
		{"900746052", '1'},
		{"900.746.052", '1'},
		{"900123456", '8'},
	}
	for _, tc := range cases {
		dv, err := nit.DigitoVerificacion(tc.nit)
		require.NoError(t, err)
		assert.Equal(t, tc.quiere, dv, "NIT %s", tc.nit)
	}
}

func TestValidar(t *testing.T) {
	assert.NoError(t, nit.Validar("900746052"), "9 dígitos sin DV es aceptado")
	assert.NoError(t, nit.Validar("900746052-1"))
	assert.NoError(t, nit.Validar("900.123.456-8"))
	assert.Error(t, nit.Validar("900746052-9"), "DV incorrecto")
	assert.Error(t, nit.Validar("12345"), "muy corto")
	assert.Error(t, nit.Validar(""), "vacío")
}

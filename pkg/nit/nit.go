// Package nit valida el dígito de verificación de un NIT colombiano
// (algoritmo módulo 11, Orden Administrativa 4 de 1989 de la DIAN).
package nit

import (
	"fmt"
	"unicode"
)

// Pesos aplicados a los 9 primeros dígitos del NIT, de izquierda a derecha.
var pesos = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// DigitoVerificacion calcula el dígito de verificación para los 9 primeros
// dígitos del NIT. El NIT puede venir con puntos o guiones ("900.746.052-1").
func DigitoVerificacion(nit string) (byte, error) {
	digitos := soloDigitos(nit)
	if len(digitos) < 9 {
		return 0, fmt.Errorf("nit: se requieren al menos 9 dígitos, se encontraron %d", len(digitos))
	}
	var suma int
	for i, d := range digitos[:9] {
		suma += int(d-'0') * pesos[i]
	}
	resto := suma % 11
	if resto == 0 || resto == 1 {
		return byte('0' + resto), nil
	}
	return byte('0' + (11 - resto)), nil
}

// Validar acepta un NIT de 9 dígitos (sin dígito de verificación) o de 10
// (con él). En el segundo caso verifica que el dígito final sea el correcto.
func Validar(nit string) error {
	digitos := soloDigitos(nit)
	switch len(digitos) {
	case 9:
		return nil
	case 10:
		esperado, err := DigitoVerificacion(nit)
		if err != nil {
			return err
		}
		if digitos[9] != esperado {
			return fmt.Errorf("nit: dígito de verificación inválido: esperado %c, recibido %c", esperado, digitos[9])
		}
		return nil
	default:
		return fmt.Errorf("nit: longitud inválida: %d dígitos", len(digitos))
	}
}

func soloDigitos(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}

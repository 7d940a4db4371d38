package utils

import (
	"fmt"
	"time"

	"github.com/jalaali/go-jalaali"
)

// Las fechas de transacción se almacenan siempre en calendario
// gregoriano (UTC). La conversión al calendario jalali ocurre solo
// en el borde de presentación y al interpretar parámetros de filtro.

// ToDisplayLocal convierte una fecha gregoriana a su representación
// jalali "YYYY-MM-DD HH:MM" para mostrarla al usuario.
func ToDisplayLocal(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	jy, jm, jd, err := jalaali.ToJalaali(t.Year(), t.Month(), t.Day())
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", jy, int(jm), jd, t.Hour(), t.Minute())
}

// ToGregorian convierte una fecha jalali (año, mes, día) al comienzo
// del día correspondiente en calendario gregoriano (UTC).
func ToGregorian(jy, jm, jd int) (time.Time, error) {
	gy, gm, gd, err := jalaali.ToGregorian(jy, jalaali.Month(jm), jd)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha jalali inválida %04d-%02d-%02d: %v", jy, jm, jd, err)
	}
	return time.Date(gy, gm, gd, 0, 0, 0, 0, time.UTC), nil
}

// ParseLocalDate interpreta una fecha jalali "YYYY-MM-DD" (formato de
// los parámetros date_from y date_to) y la convierte a gregoriano.
func ParseLocalDate(value string) (time.Time, error) {
	var jy, jm, jd int
	if _, err := fmt.Sscanf(value, "%d-%d-%d", &jy, &jm, &jd); err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q, se espera YYYY-MM-DD", value)
	}
	return ToGregorian(jy, jm, jd)
}

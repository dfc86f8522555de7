package forecasting

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData carrega a mensagem exibida no painel de previsões
	ErrInsufficientData = errors.New("Not enough data to perform forecasting. Please adjust your filters.")
	ErrInvalidHorizon   = errors.New("horizonte de previsão inválido")
)

// HorizonError detalha o horizonte rejeitado e o intervalo aceito
type HorizonError struct {
	Days int
	Min  int
	Max  int
}

func (e *HorizonError) Error() string {
	return fmt.Sprintf("%s: %d (aceito entre %d e %d dias)", ErrInvalidHorizon.Error(), e.Days, e.Min, e.Max)
}

// Unwrap permite errors.Is(err, ErrInvalidHorizon)
func (e *HorizonError) Unwrap() error {
	return ErrInvalidHorizon
}

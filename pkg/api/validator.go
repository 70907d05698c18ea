package api

import "errors"

// Validator - интерфейс, который реализуют DTO с проверяемой формой.
// Проверяется только форма полей; легальность позиции сервер
// сознательно НЕ проверяет - клиенту доверяют.
type Validator interface {
	Validate() error
}

func (m MoveMessage) Validate() error {
	if m.Direction < 0 || m.Direction > 3 {
		return errors.New("direction out of range")
	}
	return nil
}

func (m MapTransitionMessage) Validate() error {
	if m.FromMap == m.ToMap {
		return errors.New("transition to the same map")
	}
	return nil
}

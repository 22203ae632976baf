package models

import "fmt"

// FetchError - внешний источник недоступен или вернул неожиданный ответ
type FetchError struct {
	StatusCode int // 0, если ответ не был получен
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch outages: upstream returned status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch outages: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StorageError - хранилище снимков недоступно или запрос завершился ошибкой
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

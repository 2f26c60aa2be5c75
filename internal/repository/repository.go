package repository

import "errors"

// Error compartido por todos los repositorios.
var ErrNotFound = errors.New("documento no encontrado")

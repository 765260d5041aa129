package memory

import "errors"

// errForeignKey mimics the database rejecting a row whose owner or parent
// does not exist.
var errForeignKey = errors.New("db error: foreign key violation")

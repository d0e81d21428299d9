package ast

type (
	// ExprID identifies an expression node inside an Exprs store.
	ExprID uint32
	// PayloadID indexes the per-kind payload arena for a node.
	PayloadID uint32
)

const (
	NoExprID    ExprID    = 0
	NoPayloadID PayloadID = 0
)

func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }

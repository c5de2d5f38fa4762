package gen

import "fmt"

// Artifacts holds the declarations generated for one table.
type Artifacts struct {
	Catalog    *Catalog
	Entity     *Struct
	Impl       *Impl
	Payload    *Struct
	Conversion *Impl
	Query      *Struct

	Partition  *ConstructorPartition
	Statements *Statements
	List       *ListPlan
}

// Decls returns the declarations in rendering order: entity, entity impl,
// payload, conversion, query parameters. Absent payload declarations are
// skipped.
func (a *Artifacts) Decls() []Decl {
	decls := []Decl{a.Entity, a.Impl}
	if a.Payload != nil {
		decls = append(decls, a.Payload)
	}
	if a.Conversion != nil {
		decls = append(decls, a.Conversion)
	}
	return append(decls, a.Query)
}

// Build runs every builder over the catalog. It fails without partial
// artifacts when any builder fails. A nil config selects the defaults.
func Build(c *Catalog, cfg *Config) (*Artifacts, error) {
	var pagination Pagination
	if cfg != nil {
		pagination = cfg.Pagination
	}
	stmts, err := BuildStatements(c)
	if err != nil {
		return nil, err
	}
	entity, ctor, part := BuildEntity(c)
	query := BuildQuery(c)
	list := BuildList(c, pagination)
	payload, conversion := BuildPayload(c, part, c.Payload)
	impl := &Impl{
		Type: c.Entity,
		Funcs: []*Func{
			ctor,
			{
				Kind:      FuncSave,
				Name:      "Save",
				Doc:       fmt.Sprintf("Save inserts the %s into the %s table.", c.Entity, c.Table),
				Receiver:  c.Entity,
				Statement: stmts.Insert,
				Returns:   c.Entity,
			},
			{
				Kind:      FuncUpdate,
				Name:      "Update",
				Doc:       fmt.Sprintf("Update writes every column of the %s to the row with its primary key.", c.Entity),
				Receiver:  c.Entity,
				Statement: stmts.Update,
				Returns:   c.Entity,
			},
			{
				Kind:      FuncDelete,
				Name:      "Delete",
				Doc:       fmt.Sprintf("Delete removes the row with the primary key of the %s.", c.Entity),
				Receiver:  c.Entity,
				Statement: stmts.Delete,
				Returns:   c.Entity,
			},
			{
				Kind:      FuncGet,
				Name:      c.GetName(),
				Doc:       fmt.Sprintf("%s returns the %s with the given primary key.", c.GetName(), c.Entity),
				Params:    c.PrimaryKeys,
				Statement: stmts.Get,
				Returns:   c.Entity,
			},
			{
				Kind:    FuncList,
				Name:    c.ListName(),
				Doc:     fmt.Sprintf("%s returns the rows of the %s table matching any present filter of q.", c.ListName(), c.Table),
				List:    list,
				Query:   query.Name,
				Returns: c.Entity,
			},
		},
	}
	return &Artifacts{
		Catalog:    c,
		Entity:     entity,
		Impl:       impl,
		Payload:    payload,
		Conversion: conversion,
		Query:      query,
		Partition:  part,
		Statements: stmts,
		List:       list,
	}, nil
}

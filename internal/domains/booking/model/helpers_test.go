package model_test

import "shareit/shared/dto"

func andOf(filters []any) (string, map[string]any) {
	group := dto.And(filters...)

	return group.GetWhereClause()
}

func pageOf(from, size int) dto.QueryParams {
	return dto.QueryParams{Offset: from, Limit: size}
}

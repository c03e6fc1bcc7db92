package model

import (
	"shareit/shared/constant"
	"shareit/shared/dto"
	"shareit/shared/failure"
	"time"
)

// State is a listing tag resolving to a time relative predicate and an ordering.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var States = []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

// ResolveState maps a tag to a State. The empty tag is ALL; tags are case-sensitive.
func ResolveState(tag string) (State, error) {
	if tag == constant.Empty {
		return StateAll, nil
	}

	switch state := State(tag); state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	default:
		return "", failure.BadRequestFromString("Unknown state: " + tag) // nolint:wrapcheck
	}
}

func column(field string) string {
	return TableName + "." + field
}

func compare(field, operator, argName string, value any) dto.Filter {
	return dto.Filter{Table: TableName, Field: field, Value: value, Operator: operator, ArgName: argName}
}

// Filter returns the SQL filters selecting the bookings in s at now.
func (s State) Filter(now time.Time) []any {
	switch s {
	case StateCurrent:
		return []any{
			compare(FieldStart, dto.FilterOperatorLessEq, "current_start", now),
			compare(FieldEnd, dto.FilterOperatorGreater, "current_end", now),
		}
	case StatePast:
		return []any{compare(FieldEnd, dto.FilterOperatorLess, "past_end", now)}
	case StateFuture:
		return []any{compare(FieldStart, dto.FilterOperatorGreater, "future_start", now)}
	case StateWaiting:
		return []any{dto.Eq(TableName, FieldStatus, StatusWaiting)}
	case StateRejected:
		return []any{dto.Eq(TableName, FieldStatus, StatusRejected)}
	default:
		return []any{}
	}
}

// Order returns the listing order of s. Every order ends with id descending.
func (s State) Order() []dto.Sort {
	var primary dto.Sort

	switch s {
	case StatePast, StateWaiting, StateRejected:
		primary = dto.Sort{Field: column(FieldStart), Dir: dto.SortDirDesc}
	default:
		primary = dto.Sort{Field: column(FieldEnd), Dir: dto.SortDirDesc}
	}

	return []dto.Sort{primary, {Field: column(FieldID), Dir: dto.SortDirDesc}}
}

// Contains evaluates the predicate of s in memory. It agrees with Filter.
func (s State) Contains(b Booking, now time.Time) bool {
	switch s {
	case StateCurrent:
		return !b.Start.After(now) && now.Before(b.End)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return true
	}
}

// Less reports whether a is listed before b under s.
func (s State) Less(a, b Booking) bool {
	var left, right time.Time

	switch s {
	case StatePast, StateWaiting, StateRejected:
		left, right = a.Start, b.Start
	default:
		left, right = a.End, b.End
	}

	if !left.Equal(right) {
		return left.After(right)
	}

	return a.ID > b.ID
}

// Apply appends the ordering of s to params.
func (s State) Apply(params dto.QueryParams) dto.QueryParams {
	for _, sort := range s.Order() {
		params = params.OrderBy(sort.Field, sort.Dir)
	}

	return params
}

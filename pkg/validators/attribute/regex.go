/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attribute

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// RegexCache keeps compiled regexes
type RegexCache struct {
	cache *lru.Cache[string, *regexp.Regexp]
}

func NewRegexCache(size int) *RegexCache {
	if size <= 0 {
		size = DefaultRegexCacheSize
	}
	c, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		// size is positive
		panic(err)
	}
	return &RegexCache{cache: c}
}

func (c *RegexCache) compile(expr string) (*regexp.Regexp, error) {
	if re, ok := c.cache.Get(expr); ok {
		return re, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w «%s»: %w", ErrInvalidRegex, expr, err)
	}
	c.cache.Add(expr, re)
	return re, nil
}

func newRegexChecker(db graph.IDatabase, regexes *RegexCache) validators.IConstraintChecker {
	return &checker{
		name:      validators.AttributeRegexUpdate,
		supported: []string{validators.AttributeRegexUpdate},
		db:        db,
		skip: func(attr *schema.AttributeSchema) bool {
			return attr.Regex == ""
		},
		build: func(_ *validators.SchemaConstraintValidatorRequest, attr *schema.AttributeSchema) (predicate, error) {
			return regexPredicate(regexes, attr)
		},
	}
}

func regexPredicate(regexes *RegexCache, attr *schema.AttributeSchema) (predicate, error) {
	re, err := regexes.compile(attr.Regex)
	if err != nil {
		return nil, err
	}
	return func(av graph.AttributeState) (bool, error) {
		if !hasValue(av) {
			return false, nil
		}
		s, ok := av.Value.(string)
		if !ok {
			s = fmt.Sprint(av.Value)
		}
		return !re.MatchString(s), nil
	}, nil
}

// Returns query which selects values of the request attribute not matching its regex
func NewRegexQuery(req *validators.SchemaConstraintValidatorRequest, regexes *RegexCache) (validators.IConstraintQuery, error) {
	attr, err := req.NodeSchema.Attribute(req.SchemaPath.FieldName)
	if err != nil {
		return nil, err
	}
	p, err := regexPredicate(regexes, attr)
	if err != nil {
		return nil, err
	}
	q, err := newValueQuery(req, validators.AttributeRegexUpdate, p)
	if err != nil {
		return nil, err
	}
	return q, nil
}

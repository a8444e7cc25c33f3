// Package schema 用 JSON Schema 校验实体中的 JSON 字段
package schema

import (
	"bytes"
	"embed"
	"fmt"
	stdpath "path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/wfunc/hexrealm/internal/errors"
)

// 已注册的 schema
const (
	StatModifiers = "stat_modifiers.json"
	LootTable     = "loot_table.json"
)

const baseURL = "https://hexrealm.local/schemas/"

//go:embed schemas/*.json
var files embed.FS

var (
	compiled map[string]*jsonschema.Schema
	loadErr  error
	loadOnce sync.Once
)

func load() {
	entries, err := files.ReadDir("schemas")
	if err != nil {
		loadErr = err
		return
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	for _, e := range entries {
		data, err := files.ReadFile(stdpath.Join("schemas", e.Name()))
		if err != nil {
			loadErr = err
			return
		}
		if err := c.AddResource(baseURL+e.Name(), bytes.NewReader(data)); err != nil {
			loadErr = fmt.Errorf("add schema %s: %w", e.Name(), err)
			return
		}
	}

	compiled = make(map[string]*jsonschema.Schema, len(entries))
	for _, e := range entries {
		s, err := c.Compile(baseURL + e.Name())
		if err != nil {
			loadErr = fmt.Errorf("compile schema %s: %w", e.Name(), err)
			return
		}
		compiled[e.Name()] = s
	}
}

// Load 编译全部内置 schema，启动时调用以便尽早发现错误
func Load() error {
	loadOnce.Do(load)
	return loadErr
}

// Validate 按名称校验一个已解码的 JSON 值（map[string]interface{}、[]interface{} 等）
// field 用于拼接错误信息，校验失败返回 ErrInvalidParam
func Validate(name, field string, v interface{}) error {
	if err := Load(); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad)
	}
	s, ok := compiled[name]
	if !ok {
		return errors.Newf(errors.ErrNotFound, "schema %s not registered", name)
	}

	err := s.Validate(v)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return errors.Wrap(err, errors.ErrInvalidParam)
	}
	return errors.Validation(describe(name, field, leaf(ve)))
}

// leaf 找到最深一层的具体错误
func leaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

func describe(name, field string, ve *jsonschema.ValidationError) string {
	loc := strings.TrimPrefix(ve.InstanceLocation, "/")
	if name == StatModifiers {
		if loc == "" {
			return fmt.Sprintf("%s must be a dictionary", field)
		}
		return fmt.Sprintf("%s['%s'] must be a number", field, loc)
	}
	if loc == "" {
		return fmt.Sprintf("%s: %s", field, ve.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", field, strings.ReplaceAll(loc, "/", "."), ve.Message)
}

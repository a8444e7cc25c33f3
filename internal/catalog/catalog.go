// Package catalog 物品目录种子文件（YAML）的读取
package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/wfunc/hexrealm/internal/models"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
)

// File 种子文件结构
type File struct {
	Items []Entry `yaml:"items"`
}

// Entry 单个物品定义
type Entry struct {
	Name          string                 `yaml:"name"`
	Description   *string                `yaml:"description"`
	Type          string                 `yaml:"type"`
	Rarity        string                 `yaml:"rarity"`
	Icon          *string                `yaml:"icon"`
	Effect        *string                `yaml:"effect"`
	Durability    *int                   `yaml:"durability"`
	Category      *string                `yaml:"category"`
	SubCategory   *string                `yaml:"sub_category"`
	IsActive      *bool                  `yaml:"is_active"`
	StackSize     int                    `yaml:"stack_size"`
	Cooldown      int                    `yaml:"cooldown"`
	UpgradeLevel  int                    `yaml:"upgrade_level"`
	DropRate      float64                `yaml:"drop_rate"`
	StatModifiers map[string]interface{} `yaml:"stat_modifiers"`
}

// LoadFile 读取种子文件
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load 从 reader 解析种子文件，未知字段视为错误
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	file := &File{}
	if err := dec.Decode(file); err != nil {
		if err == io.EOF {
			return file, nil
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return file, nil
}

// ToModel 转为物品模型，stack_size 缺省为 1，is_active 缺省为 true
// stat_modifiers 的数值类型在这里被转换为 float64，非数值保留给 schema 校验报错
func (e Entry) ToModel() *models.Item {
	item := &models.Item{
		Name:         e.Name,
		Description:  e.Description,
		Type:         e.Type,
		Rarity:       e.Rarity,
		Icon:         e.Icon,
		Effect:       e.Effect,
		Durability:   e.Durability,
		Category:     e.Category,
		SubCategory:  e.SubCategory,
		IsActive:     true,
		StackSize:    e.StackSize,
		Cooldown:     e.Cooldown,
		UpgradeLevel: e.UpgradeLevel,
		DropRate:     e.DropRate,
	}
	if e.IsActive != nil {
		item.IsActive = *e.IsActive
	}
	if item.StackSize == 0 {
		item.StackSize = 1
	}
	if e.StatModifiers != nil {
		mods := make(map[string]float64, len(e.StatModifiers))
		for k, v := range e.StatModifiers {
			switch n := v.(type) {
			case int:
				mods[k] = float64(n)
			case float64:
				mods[k] = n
			}
		}
		item.StatModifiers = datatypes.NewJSONType(mods)
	}
	return item
}

// RawStatModifiers 供 schema 校验使用的原始值，整数统一转为 float64
func (e Entry) RawStatModifiers() map[string]interface{} {
	if e.StatModifiers == nil {
		return nil
	}
	out := make(map[string]interface{}, len(e.StatModifiers))
	for k, v := range e.StatModifiers {
		if n, ok := v.(int); ok {
			out[k] = float64(n)
			continue
		}
		out[k] = v
	}
	return out
}

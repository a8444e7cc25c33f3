// Package docs 内嵌 OpenAPI 文档并注册到 swag
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

// OpenAPI docs/api/openapi.yaml 的内容
//
//go:embed api/openapi.yaml
var OpenAPI []byte

// SwaggerInfo API 基本信息
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Hexrealm API",
	Description:      "六边形地图多人游戏状态服务",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(OpenAPI),
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

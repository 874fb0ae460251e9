// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package server

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// home serves the operator page.
func (api *bridgeAPI) home(c *gin.Context) {
	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, map[string]string{
		"Contract": api.srv.config.InvokeConfig.ContractName,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

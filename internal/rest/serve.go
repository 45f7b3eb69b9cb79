// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlnoga/ramantools/internal/ops"
	"github.com/mlnoga/ramantools/internal/spectral"
)

func Serve(version string) {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET ("/ping",    getPing)
			v1.POST("/process", makePostProcess(version))
			v1.POST("/default", makePostDefault(version))
		}
	}
	r.Run() // listen and serve on 0.0.0.0:8080
}

func getPing(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "pong",
	})
}

type postProcessArgs struct {
	Data      string `json:"data"`
	Pipeline  string `json:"pipeline"`
	Comment   string `json:"comment"`
	Delimiter string `json:"delimiter"`
}

// Returns a handler which parses a delimited dataset from the request,
// reconstructs the pipeline from the given provenance text, applies it
// and streams the resulting dataset back as delimited text
func makePostProcess(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var args postProcessArgs
		if err:=c.ShouldBind(&args); err!=nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
			return
		}

		pl, err:=ops.PipelineFromProvenance(args.Pipeline)
		if err!=nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
			return
		}
		runPipeline(c, version, &args, pl)
	}
}

type postDefaultArgs struct {
	Data      string `json:"data"`
	Comment   string `json:"comment"`
	Delimiter string `json:"delimiter"`
}

// Returns a handler which applies the standard preprocessing pipeline
// to a delimited dataset from the request
func makePostDefault(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var args postDefaultArgs
		if err:=c.ShouldBind(&args); err!=nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
			return
		}
		runPipeline(c, version, &postProcessArgs{Data: args.Data, Comment: args.Comment, Delimiter: args.Delimiter}, ops.NewDefaultPipeline())
	}
}

func runPipeline(c *gin.Context, version string, args *postProcessArgs, pl *ops.Pipeline) {
	comment, delimiter:=byte('#'), byte(',')
	if args.Comment!=""   { comment  =args.Comment[0] }
	if args.Delimiter!="" { delimiter=args.Delimiter[0] }

	ds, err:=spectral.ParseCSV(args.Data, "request body", comment, delimiter)
	if err!=nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error() } )
		return
	}

	logWriter := c.Writer
	header := logWriter.Header()
	header.Set("Content-Type", "text/plain")
	logWriter.WriteHeader(http.StatusOK)

	if err:=pl.Apply(ds, ops.NewContext(logWriter)); err!=nil {
		logWriter.WriteString("error: "+err.Error()+"\n")
		logWriter.(http.Flusher).Flush()
		return
	}
	if err:=ds.Write(logWriter, "Raman CLI Tools version "+version+"."); err!=nil {
		logWriter.WriteString("error: "+err.Error()+"\n")
	}
	logWriter.(http.Flusher).Flush()
}

package handler

import (
	"Integration_Pool_Manager/internal/pool-manager/api/dto/request"
	"Integration_Pool_Manager/internal/pool-manager/api/dto/response"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var errSheetNotFound = errors.New("sheet not found")
var errEmptyFile = errors.New("file is empty")
var errMissingRequiredColumn = errors.New("missing required column")

const serversSheet = "Servers"

var exportHeaders = []interface{}{"id", "name", "status", "protocol", "endpoint", "region", "priority", "capabilities", "tags", "created_at", "updated_at"}

func (s *serverHandler) ExportServersToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, msg := parseServerFilter(c)
		if msg != "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: msg,
			})
			return
		}
		servers := s.serverService.ListServers(c, filter)
		file, err := s.generateExcelFile(servers)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()

		fileName := fmt.Sprintf("servers-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (s *serverHandler) generateExcelFile(servers []model.ServerConfig) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(serversSheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err = f.SetSheetRow(serversSheet, "A1", &exportHeaders); err != nil {
		f.Close()
		return nil, err
	}
	for i, server := range servers {
		rowData := []interface{}{
			server.ID,
			server.Name,
			string(server.Status),
			string(server.Protocol),
			server.Endpoint,
			server.Region,
			string(server.Priority),
			formatCapabilities(server.Capabilities),
			strings.Join(server.Tags, ","),
			server.CreatedAt.Format("2006-01-02 15:04:05"),
			server.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		if err = f.SetSheetRow(serversSheet, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func (s *serverHandler) ImportServersFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		ext := filepath.Ext(file.Filename)
		if ext != ".xlsx" && ext != ".xls" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "File must be excel file",
			})
			return
		}

		validServers, invalidServers, err := s.extractServersFromExcelFile(file, c.Query("sheet_name"))
		if err != nil {
			switch {
			case errors.Is(err, errEmptyFile):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "File is empty",
				})
			case errors.Is(err, errSheetNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Sheet not found",
				})
			case errors.Is(err, errMissingRequiredColumn):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Missing required column",
				})
			default:
				err = fmt.Errorf("ServerHandler.ImportServersFromExcelFile: %w", err)
				s.loggingError(c, err, "failed to import servers", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}

		res := response.ImportServerResponse{FailedServers: invalidServers}
		if len(validServers) > 0 {
			imported, failed := s.serverService.ImportServers(c, validServers)
			for _, server := range imported {
				res.ImportedServers = append(res.ImportedServers, server.Name)
			}
			for _, f := range failed {
				res.FailedServers = append(res.FailedServers, response.FailedServerResponse{Name: f.Name, Reason: f.Reason})
			}
		}
		res.ImportedCount = len(res.ImportedServers)
		res.FailedCount = len(res.FailedServers)
		c.JSON(http.StatusOK, res)
	}
}

func (s *serverHandler) extractServersFromExcelFile(file *multipart.FileHeader, importSheet string) (validServers []model.ServerConfig, invalidServers []response.FailedServerResponse, err error) {
	fileContent, err := file.Open()
	if err != nil {
		return
	}
	defer fileContent.Close()

	xlsx, err := excelize.OpenReader(fileContent)
	if err != nil {
		return
	}
	defer xlsx.Close()

	if importSheet == "" {
		importSheet = xlsx.GetSheetName(0)
	} else {
		index, _ := xlsx.GetSheetIndex(importSheet)
		if index == -1 {
			err = errSheetNotFound
			return
		}
	}

	rows, err := xlsx.GetRows(importSheet)
	if err != nil {
		return
	}
	if len(rows) < 2 {
		err = errEmptyFile
		return
	}

	columnMap := make(map[string]int)
	for i, cell := range rows[0] {
		columnMap[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	for _, requiredColumn := range []string{"name", "endpoint", "protocol"} {
		if _, ok := columnMap[requiredColumn]; !ok {
			err = errMissingRequiredColumn
			return
		}
	}
	cell := func(row []string, column string) string {
		i, ok := columnMap[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for _, row := range rows[1:] {
		name := cell(row, "name")
		req := request.ServerRequest{
			Name:         name,
			Description:  cell(row, "description"),
			Version:      cell(row, "version"),
			Endpoint:     cell(row, "endpoint"),
			Protocol:     strings.ToLower(cell(row, "protocol")),
			Region:       cell(row, "region"),
			Priority:     strings.ToLower(cell(row, "priority")),
			Capabilities: parseCapabilities(cell(row, "capabilities")),
			Tags:         splitList(cell(row, "tags"), ","),
		}
		if v := cell(row, "max_concurrent_connections"); v != "" {
			n, e := strconv.Atoi(v)
			if e != nil {
				invalidServers = append(invalidServers, response.FailedServerResponse{Name: name, Reason: "max_concurrent_connections must be an integer"})
				continue
			}
			req.Performance = &model.Performance{MaxConcurrentConnections: n}
		}
		if v := cell(row, "health_check_interval_ms"); v != "" {
			n, e := strconv.Atoi(v)
			if e != nil {
				invalidServers = append(invalidServers, response.FailedServerResponse{Name: name, Reason: "health_check_interval_ms must be an integer"})
				continue
			}
			req.HealthCheck = &model.HealthCheckConfig{Enabled: true, IntervalMs: n, Endpoint: cell(row, "health_check_endpoint")}
		}
		if e := s.validator.Struct(req); e != nil {
			reason := e.Error()
			var fieldErrors validator.ValidationErrors
			if errors.As(e, &fieldErrors) {
				reason = formatValidationError(fieldErrors[0])
			}
			invalidServers = append(invalidServers, response.FailedServerResponse{Name: name, Reason: reason})
			continue
		}
		validServers = append(validServers, toServerConfig(req))
	}
	return
}

// parseCapabilities reads "github:listRepos|createIssue;slack:sendMessage".
func parseCapabilities(raw string) []model.Capability {
	var capabilities []model.Capability
	for _, entry := range splitList(raw, ";") {
		name, ops, _ := strings.Cut(entry, ":")
		capabilities = append(capabilities, model.Capability{
			Name:       strings.TrimSpace(name),
			Operations: splitList(ops, "|"),
		})
	}
	return capabilities
}

func formatCapabilities(capabilities []model.Capability) string {
	entries := make([]string, 0, len(capabilities))
	for _, c := range capabilities {
		entries = append(entries, c.Name+":"+strings.Join(c.Operations, "|"))
	}
	return strings.Join(entries, ";")
}

func splitList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

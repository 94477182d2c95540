package http

import (
	"net/http"
	"net/url"

	"perflog-analytics/internal/analyzers"
	"perflog-analytics/internal/models"
)

// multipartOverhead is the body allowance on top of the log size for multipart framing.
const multipartOverhead = 64 * 1024

const (
	querySocket = "socket"
	queryMc     = "mc"
	queryCh     = "ch"
)

type mcutilsReportHandler struct {
	analysisService analyzers.AnalysisService
	maxBodyBytes    int64
}

func NewMcUtilsReportHandler(analysisService analyzers.AnalysisService, maxUploadBytes int) AppHttpHandler {
	return &mcutilsReportHandler{
		analysisService: analysisService,
		maxBodyBytes:    int64(maxUploadBytes) + multipartOverhead,
	}
}

// Handle processes POST /analyses/mcutils?socket=socket0&mc=0&mc=1&ch=0.
func (h *mcutilsReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if _, svcErr := responseFormat(r); svcErr != nil {
		return svcErr
	}
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer body.Close()

	report, err := h.analysisService.AnalyzeMcUtils(r.Context(), body, contentType(r), bandwidthFilter(r.URL.Query()))
	if err != nil {
		return err
	}
	return writeResponse(w, r, http.StatusOK, report)
}

type ethtoolReportHandler struct {
	analysisService analyzers.AnalysisService
	maxBodyBytes    int64
}

func NewEthtoolReportHandler(analysisService analyzers.AnalysisService, maxUploadBytes int) AppHttpHandler {
	return &ethtoolReportHandler{
		analysisService: analysisService,
		maxBodyBytes:    int64(maxUploadBytes) + multipartOverhead,
	}
}

// Handle processes POST /analyses/ethtool.
func (h *ethtoolReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if _, svcErr := responseFormat(r); svcErr != nil {
		return svcErr
	}
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer body.Close()

	report, err := h.analysisService.AnalyzeEthtool(r.Context(), body, contentType(r))
	if err != nil {
		return err
	}
	return writeResponse(w, r, http.StatusOK, report)
}

// bandwidthFilter reads the repeatable socket, mc and ch parameters. An absent parameter
// selects every value of that dimension.
func bandwidthFilter(query url.Values) models.BandwidthFilter {
	return models.BandwidthFilter{
		Sockets: query[querySocket],
		Mcs:     query[queryMc],
		Chs:     query[queryCh],
	}
}

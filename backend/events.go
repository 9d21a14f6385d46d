package backend

// コンテンツ層へ送るイベント
const (
	EventOpenDataFile              = "open-data-file"
	EventCloseDataFile             = "close-data-file"
	EventShowLayersWindow          = "show-layers-window"
	EventShowLayerPropertiesWindow = "show-layer-properties-window"
	EventShowDataFilesWindow       = "show-data-files-window"
	EventShowFileInfoWindow        = "show-file-info-window"
	EventShowVariableInfoWindow    = "show-variable-info-window"
	EventShowColorMapsWindow       = "show-color-maps-window"
	EventShowTimeSeriesPlotWindow  = "show-time-series-plot-window"
	EventAddPointOfInterest        = "add-point-of-interest"
	EventRemovePointOfInterest     = "remove-point-of-interest"
	EventRemoveAllPointsOfInterest = "remove-all-points-of-interest"
	EventShowPreferencesWindow     = "show-preferences-window"
	EventLogMessage                = "log-message"
)

// コンテンツ層から受け取るイベント
const (
	EventHandleError = "handle-error"
)

// forwardedCommands はそのまま同名イベントとしてコンテンツ層へ転送するコマンド
var forwardedCommands = map[CommandID]string{
	CmdShowLayers:          EventShowLayersWindow,
	CmdShowLayerProperties: EventShowLayerPropertiesWindow,
	CmdShowDataFiles:       EventShowDataFilesWindow,
	CmdShowFileInfo:        EventShowFileInfoWindow,
	CmdShowVariableInfo:    EventShowVariableInfoWindow,
	CmdShowColorMaps:       EventShowColorMapsWindow,
	CmdShowTimeSeriesPlot:  EventShowTimeSeriesPlotWindow,
	CmdAddPOI:              EventAddPointOfInterest,
	CmdRemovePOI:           EventRemovePointOfInterest,
	CmdRemoveAllPOIs:       EventRemoveAllPointsOfInterest,
	CmdPreferences:         EventShowPreferencesWindow,
}

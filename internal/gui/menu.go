// Menu handler for application actions
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"workout-story/internal/core"
	appio "workout-story/internal/io"
)

// MenuHandler handles menu actions.
type MenuHandler struct {
	window   fyne.Window
	loader   *appio.ImageLoader
	exporter *appio.Exporter
	logger   *logrus.Logger

	exportExtension string

	onPhotoLoaded func(*core.SourceImage)
}

// NewMenuHandler creates the menu handler.
func NewMenuHandler(window fyne.Window, loader *appio.ImageLoader, exporter *appio.Exporter, exportExtension string, logger *logrus.Logger) *MenuHandler {
	return &MenuHandler{
		window:          window,
		loader:          loader,
		exporter:        exporter,
		exportExtension: exportExtension,
		logger:          logger,
	}
}

// OnPhotoLoaded registers the callback invoked with each decoded photo.
func (mh *MenuHandler) OnPhotoLoaded(fn func(*core.SourceImage)) {
	mh.onPhotoLoaded = fn
}

// MainMenu builds the application menu. compose is called at export time to
// render the story raster from the current state.
func (mh *MenuHandler) MainMenu(compose func() *image.RGBA) *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Photo...", mh.openPhoto),
		fyne.NewMenuItem("Export Story...", func() { mh.exportStory(compose) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			mh.window.Close()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, helpMenu)
}

func (mh *MenuHandler) openPhoto() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		photo, err := mh.loader.LoadImage(path)
		if err != nil {
			mh.showError("Load Error", err)
			return
		}

		if mh.onPhotoLoaded != nil {
			mh.onPhotoLoaded(photo)
		}
	}, mh.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif", ".webp"}))
	fileDialog.Show()
}

func (mh *MenuHandler) exportStory(compose func() *image.RGBA) {
	raster := compose()
	if raster == nil {
		dialog.ShowInformation("Nothing to export", "Load a photo first.", mh.window)
		return
	}

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := mh.exporter.Export(raster, path); err != nil {
			mh.showError("Export Error", err)
			return
		}
		mh.logger.WithField("filepath", path).Info("Story export complete")
	}, mh.window)

	fileDialog.SetFileName("story." + mh.exportExtension)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".jpg", ".jpeg", ".png", ".webp"}))
	fileDialog.Show()
}

func (mh *MenuHandler) showAbout() {
	content := widget.NewLabel("Workout Story Composer\n\nPlace a photo behind the stat overlay,\npan and zoom it, and export a 1080×1920 story.")
	dialog.NewCustom("About", "Close", content, mh.window).Show()
}

func (mh *MenuHandler) showError(title string, err error) {
	mh.logger.WithError(err).Error(title)
	dialog.ShowError(err, mh.window)
}

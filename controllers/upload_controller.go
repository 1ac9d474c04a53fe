package controllers

import (
	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/storage"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
)

// UploadController serves the file upload endpoints
type UploadController struct {
	uploads *services.UploadService
}

// NewUploadController creates an UploadController
func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{uploads: uploads}
}

// POST /api/upload/single
func (uc *UploadController) UploadSingle(c *gin.Context) {
	utils.LogInfo("UploadSingle called")

	file, err := c.FormFile("file")
	if err != nil {
		utils.LogError("No file in upload request: %v", err)
		utils.BadRequest(c, utils.ErrNoFileProvided, "")
		return
	}

	uploaded, err := uc.uploads.Upload(c.Request.Context(), file, c.DefaultPostForm("folder", storage.DefaultFolder))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgFileUploaded, uploaded)
}

// POST /api/upload/multiple
func (uc *UploadController) UploadMultiple(c *gin.Context) {
	utils.LogInfo("UploadMultiple called")

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		utils.BadRequest(c, utils.ErrNoFilesProvided, "")
		return
	}

	uploaded, err := uc.uploads.UploadMany(c.Request.Context(), form.File["files"], c.DefaultPostForm("folder", storage.DefaultFolder))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	urls := make([]string, 0, len(uploaded))
	for _, f := range uploaded {
		urls = append(urls, f.URL)
	}
	utils.Success(c, utils.MsgFilesUploaded, gin.H{"files": uploaded, "urls": urls})
}

// DELETE /api/upload/*key
func (uc *UploadController) Delete(c *gin.Context) {
	key := c.Param("key")
	if q := c.Query("url"); q != "" {
		key = q
	}
	utils.LogInfo("DeleteFile called for %s", key)

	if err := uc.uploads.Delete(c.Request.Context(), key); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, utils.MsgFileDeleted, nil)
}

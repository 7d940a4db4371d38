package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateImport procesa un archivo CSV de transacciones del perfil
// autenticado y devuelve el registro del trabajo con sus contadores.
func CreateImport(c *gin.Context) {
	profileID := c.GetString("profileId")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Archivo no proporcionado"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo abrir el archivo"})
		return
	}
	defer file.Close()

	importer, err := importerService.ImportCSV(c.Request.Context(), profileID, fileHeader.Filename, file)
	if err != nil {
		log.Printf("Error al procesar la importación: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la importación"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Importación procesada",
		"importer": importer,
	})
}

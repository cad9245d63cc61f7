// extract.go pulls handler parameters out of free-text task descriptions.
//
// Every extractor degrades to a documented default when the pattern doesn't
// match — a missing parameter is never an error. The defaults are part of
// the external contract and must not change.
package main

import "regexp"

var (
	fileNamePattern     = regexp.MustCompile(`(?i)archivo\s+["']?([^"'\s]+)["']?`)
	folderNamePattern   = regexp.MustCompile(`(?i)carpeta\s+["']?([^"'\s]+)["']?`)
	commandPattern      = regexp.MustCompile(`(?i)comando\s+["']?([^"']+)["']?`)
	dependencyPattern   = regexp.MustCompile(`(?i)dependencia\s+["']?([^"'\s]+)["']?`)
	componentPattern    = regexp.MustCompile(`(?i)componente\s+["']?([^"'\s]+)["']?`)
	fileContentPattern  = regexp.MustCompile(`(?i)contenido\s*:\s*["']?([^"']+)["']?`)
	modificationPattern = regexp.MustCompile(`(?i)modificar\s+(.+)`)
)

func extractFileName(description string) string {
	return firstGroup(fileNamePattern, description, "nuevo_archivo.txt")
}

func extractFolderName(description string) string {
	return firstGroup(folderNamePattern, description, "nueva_carpeta")
}

func extractCommand(description string) string {
	return firstGroup(commandPattern, description, `echo "Comando no especificado"`)
}

func extractDependencyName(description string) string {
	return firstGroup(dependencyPattern, description, "express")
}

func extractComponentName(description string) string {
	return firstGroup(componentPattern, description, "NuevoComponente")
}

func extractFileContent(description string) string {
	return firstGroup(fileContentPattern, description, "// Contenido generado automáticamente")
}

func extractModifications(description string) string {
	return firstGroup(modificationPattern, description, "modificación no especificada")
}

func firstGroup(re *regexp.Regexp, s, fallback string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return fallback
	}
	return m[1]
}

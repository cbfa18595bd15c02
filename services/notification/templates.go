package notification

import "html/template"

// The two email bodies. Layout is deliberately inline-styled: most mail
// clients ignore <style> blocks.

var newRequestTmpl = template.Must(template.New("new_request").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Nouvelle demande de course PSG</title></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; padding: 20px; background-color: #f8fafc;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 16px; overflow: hidden; box-shadow: 0 10px 25px rgba(0,0,0,0.1);">
    <div style="background: {{.HeaderGradient}}; color: white; padding: 30px; text-align: center;">
      <h1>{{.HeaderIcon}} {{.HeaderTitle}}</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">{{.HeaderSub}}</p>
    </div>
    <div style="padding: 30px;">
      <h2 style="color: {{.Accent}}; margin-bottom: 20px;">📋 Détails de la course</h2>
      <div style="background: #f1f5f9; border-left: 4px solid {{.Accent}}; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <div style="margin-bottom: 15px;">📅 <strong>Date:</strong> <span style="color: {{.Accent}}; font-weight: bold;">{{.FormattedDate}}</span></div>
        <div style="margin-bottom: 15px;">🕐 <strong>Heure:</strong> <span style="color: {{.Accent}}; font-weight: bold;">{{.Time}}</span></div>
        <div>👤 <strong>Joueur:</strong> <span style="color: {{.Accent}}; font-weight: bold;">{{.PlayerName}}</span></div>
      </div>
      <div style="background: linear-gradient(90deg, #004170 0%, #E1000F 100%); color: white; padding: 20px; border-radius: 12px; margin: 20px 0; text-align: center;">
        <h3 style="margin: 0 0 15px 0;">🗺️ TRAJET</h3>
        <div style="font-size: 18px; font-weight: bold;">{{.Departure}} → {{.Destination}}</div>
      </div>
      <div style="background: #dcfce7; border: 2px solid #16a34a; padding: 20px; border-radius: 12px; margin: 15px 0;">
        <div style="font-weight: bold; color: #16a34a;">📍 DÉPART</div>
        <div style="font-size: 18px; font-weight: bold; color: #16a34a;">{{.Departure}}</div>
        <a href="{{.DepartureWaze}}" style="background: #00d4aa; color: white; padding: 8px 16px; border-radius: 8px; text-decoration: none; font-size: 14px; font-weight: bold;" target="_blank">🗺️ Waze</a>
      </div>
      <div style="background: #fef2f2; border: 2px solid #E1000F; padding: 20px; border-radius: 12px; margin: 15px 0;">
        <div style="font-weight: bold; color: #E1000F;">🎯 DESTINATION</div>
        <div style="font-size: 18px; font-weight: bold; color: #E1000F;">{{.Destination}}</div>
        <a href="{{.DestinationWaze}}" style="background: #00d4aa; color: white; padding: 8px 16px; border-radius: 8px; text-decoration: none; font-size: 14px; font-weight: bold;" target="_blank">🗺️ Waze</a>
      </div>
      {{if .Notes}}
      <div style="background: #fef3c7; border: 1px solid #f59e0b; padding: 15px; border-radius: 8px; margin: 15px 0;">
        <strong>📝 Notes de {{.PlayerName}}:</strong><br>
        {{.Notes}}
      </div>
      {{end}}
      <div style="background: #e0e7ff; border: 2px solid #6366f1; padding: 20px; border-radius: 12px; margin: 20px 0; text-align: center; color: #6366f1;">
        <h3 style="margin: 0 0 10px 0;">✅ Actions rapides</h3>
        <p style="margin: 5px 0;">• Clique sur les boutons Waze ci-dessus</p>
        <p style="margin: 5px 0;">• Confirme à {{.PlayerName}} par SMS/WhatsApp</p>
        <p style="margin: 5px 0;">• Note l'heure dans ton agenda</p>
      </div>
    </div>
    <div style="background: #f8fafc; padding: 20px; text-align: center; color: #64748b; font-size: 14px;">
      <p>Email automatique envoyé depuis YSG Transport</p>
      <p>Demande reçue le {{.GeneratedAt}}</p>
    </div>
  </div>
</body>
</html>
`))

var reminderTmpl = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Rappel course PSG</title></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; padding: 20px; background-color: #f8fafc;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 16px; overflow: hidden; box-shadow: 0 10px 25px rgba(0,0,0,0.1);">
    <div style="background: {{.HeaderGradient}}; color: white; padding: 30px; text-align: center;">
      <h1>{{.HeaderIcon}} {{.HeaderTitle}}</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">{{.HeaderSub}}</p>
    </div>
    <div style="padding: 30px;">
      <div style="font-size: 2em; font-weight: bold; color: {{.Accent}}; text-align: center; margin: 20px 0;">{{.Countdown}}</div>
      <div style="background: {{if .IsUrgent}}#fef2f2{{else}}#f1f5f9{{end}}; border-left: 4px solid {{.Accent}}; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <div style="margin-bottom: 15px;">📅 <strong>Date:</strong> <span style="color: {{.Accent}}; font-weight: bold;">{{.FormattedDate}}</span></div>
        <div style="margin-bottom: 15px;">🕐 <strong>Heure:</strong> <span style="color: {{.Accent}}; font-weight: bold;">{{.Time}}</span></div>
        <div>👤 <strong>Joueur:</strong> <span style="color: {{.Accent}}; font-weight: bold;">{{.PlayerName}}</span></div>
      </div>
      <div style="background: #dcfce7; border: 2px solid #16a34a; padding: 15px; border-radius: 12px; margin: 15px 0;">
        <div style="font-weight: bold; color: #16a34a;">📍 DÉPART</div>
        <div style="font-weight: bold; color: #16a34a;">{{.Departure}}</div>
        <a href="{{.DepartureWaze}}" style="background: #00d4aa; color: white; padding: 8px 16px; border-radius: 8px; text-decoration: none; font-size: 14px; font-weight: bold;" target="_blank">🗺️ Waze</a>
      </div>
      <div style="background: #fef2f2; border: 2px solid #E1000F; padding: 15px; border-radius: 12px; margin: 15px 0;">
        <div style="font-weight: bold; color: #E1000F;">🎯 DESTINATION</div>
        <div style="font-weight: bold; color: #E1000F;">{{.Destination}}</div>
        <a href="{{.DestinationWaze}}" style="background: #00d4aa; color: white; padding: 8px 16px; border-radius: 8px; text-decoration: none; font-size: 14px; font-weight: bold;" target="_blank">🗺️ Waze</a>
      </div>
      {{if .Notes}}
      <div style="background: #fef3c7; border: 1px solid #f59e0b; padding: 15px; border-radius: 8px; margin: 15px 0;">
        <strong>📝 Notes importantes:</strong><br>
        {{.Notes}}
      </div>
      {{end}}
      <div style="background: {{if .IsUrgent}}#fef2f2{{else}}#dcfce7{{end}}; border: 1px solid {{if .IsUrgent}}#E1000F{{else}}#16a34a{{end}}; padding: 15px; border-radius: 8px; margin: 20px 0; text-align: center;">
        <strong style="color: {{if .IsUrgent}}#E1000F{{else}}#16a34a{{end}};">
          {{if .IsUrgent}}🚨 Préparation immédiate !{{else}}✅ Vérification du planning{{end}}
        </strong>
        {{if .IsUrgent}}<p style="color: #E1000F; margin: 10px 0;">Clique sur Waze et c'est parti !</p>{{end}}
      </div>
    </div>
    <div style="background: #f8fafc; padding: 20px; text-align: center; color: #64748b; font-size: 14px;">
      <p>Rappel automatique YSG Transport</p>
      <p>Envoyé le {{.GeneratedAt}}</p>
    </div>
  </div>
</body>
</html>
`))
